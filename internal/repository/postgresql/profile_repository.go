package repository

import (
	"context"
	"database/sql"

	entity "rentnest/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Profile, error)
	Upsert(ctx context.Context, profile *entity.Profile) error
	Search(ctx context.Context, excludeID uuid.UUID, nameQuery string) ([]entity.Profile, error)
	GetAllExcept(ctx context.Context, excludeIDs []uuid.UUID) ([]entity.Profile, error)
	UpdatePicture(ctx context.Context, id uuid.UUID, url string) error
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, name, phone, address, birth, profile_picture, created_at, updated_at`

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var p entity.Profile
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Phone, &p.Address, &p.Birth,
		&p.ProfilePicture, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *profileRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func (r *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, name, phone, address, birth, profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			birth = EXCLUDED.birth,
			profile_picture = EXCLUDED.profile_picture,
			updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.Name, profile.Phone, profile.Address,
		profile.Birth, profile.ProfilePicture,
	)
	return err
}

func (r *profileRepository) Search(ctx context.Context, excludeID uuid.UUID, nameQuery string) ([]entity.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id <> $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, excludeID, nameQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func (r *profileRepository) GetAllExcept(ctx context.Context, excludeIDs []uuid.UUID) ([]entity.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id <> ALL($1)
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(excludeIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func (r *profileRepository) UpdatePicture(ctx context.Context, id uuid.UUID, url string) error {
	// Upsert so a picture uploaded before the first profile save still lands.
	query := `
		INSERT INTO profiles (id, profile_picture, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET profile_picture = EXCLUDED.profile_picture, updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, id, url)
	return err
}

func scanProfiles(rows *sql.Rows) ([]entity.Profile, error) {
	var profiles []entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Phone, &p.Address, &p.Birth,
			&p.ProfilePicture, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
