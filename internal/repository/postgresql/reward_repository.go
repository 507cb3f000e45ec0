package repository

import (
	"context"
	"database/sql"

	entity "rentnest/internal/domain"

	"github.com/google/uuid"
)

type RewardRepository interface {
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.RewardPoints, error)
}

type rewardRepository struct {
	db *sql.DB
}

func NewRewardRepository(db *sql.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.RewardPoints, error) {
	query := `
		SELECT profile_id, points, created_at, updated_at
		FROM reward_points
		WHERE profile_id = $1
	`

	var rp entity.RewardPoints
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&rp.ProfileID, &rp.Points, &rp.CreatedAt, &rp.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rp, nil
}
