package repository

import (
	"context"
	"database/sql"

	entity "rentnest/internal/domain"

	"github.com/google/uuid"
)

type OwnershipRepository interface {
	Create(ctx context.Context, rel *entity.OwnershipRelation) error
	// FindActiveByPair returns the pending or accepted relation for the
	// unordered pair, if any.
	FindActiveByPair(ctx context.Context, a, b uuid.UUID) (*entity.OwnershipRelation, error)
	// UpdatePendingStatus moves the (requester, recipient, pending) row to the
	// given status. Returns uuid.Nil when no such row exists.
	UpdatePendingStatus(ctx context.Context, requester, recipient uuid.UUID, to entity.OwnershipStatus) (uuid.UUID, error)
	// RemoveAccepted marks the accepted relation of the unordered pair as
	// removed. The row is retained. Returns uuid.Nil when no such row exists.
	RemoveAccepted(ctx context.Context, a, b uuid.UUID) (uuid.UUID, error)
	AcceptedPeers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	PendingRequesters(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// ActivePeers returns peers in a pending or accepted relation with userID,
	// in either direction. Used to exclude them from the candidate list.
	ActivePeers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type ownershipRepository struct {
	db *sql.DB
}

func NewOwnershipRepository(db *sql.DB) OwnershipRepository {
	return &ownershipRepository{db: db}
}

func (r *ownershipRepository) Create(ctx context.Context, rel *entity.OwnershipRelation) error {
	query := `
		INSERT INTO shared_ownership (id, requester_id, recipient_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		rel.ID, rel.RequesterID, rel.RecipientID, rel.Status,
		rel.CreatedAt, rel.UpdatedAt,
	)
	return err
}

func (r *ownershipRepository) FindActiveByPair(ctx context.Context, a, b uuid.UUID) (*entity.OwnershipRelation, error) {
	query := `
		SELECT id, requester_id, recipient_id, status, created_at, updated_at
		FROM shared_ownership
		WHERE ((requester_id = $1 AND recipient_id = $2) OR (requester_id = $2 AND recipient_id = $1))
		  AND status IN ('pending', 'accepted')
		LIMIT 1
	`

	var rel entity.OwnershipRelation
	err := r.db.QueryRowContext(ctx, query, a, b).Scan(
		&rel.ID, &rel.RequesterID, &rel.RecipientID, &rel.Status,
		&rel.CreatedAt, &rel.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rel, nil
}

func (r *ownershipRepository) UpdatePendingStatus(ctx context.Context, requester, recipient uuid.UUID, to entity.OwnershipStatus) (uuid.UUID, error) {
	query := `
		UPDATE shared_ownership
		SET status = $1, updated_at = NOW()
		WHERE requester_id = $2 AND recipient_id = $3 AND status = 'pending'
		RETURNING id
	`
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, query, to, requester, recipient).Scan(&id)
	if err == sql.ErrNoRows {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *ownershipRepository) RemoveAccepted(ctx context.Context, a, b uuid.UUID) (uuid.UUID, error) {
	query := `
		UPDATE shared_ownership
		SET status = 'removed', updated_at = NOW()
		WHERE ((requester_id = $1 AND recipient_id = $2) OR (requester_id = $2 AND recipient_id = $1))
		  AND status = 'accepted'
		RETURNING id
	`
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, query, a, b).Scan(&id)
	if err == sql.ErrNoRows {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *ownershipRepository) AcceptedPeers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT CASE WHEN requester_id = $1 THEN recipient_id ELSE requester_id END
		FROM shared_ownership
		WHERE (requester_id = $1 OR recipient_id = $1) AND status = 'accepted'
	`
	return r.queryIDs(ctx, query, userID)
}

func (r *ownershipRepository) PendingRequesters(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT requester_id
		FROM shared_ownership
		WHERE recipient_id = $1 AND status = 'pending'
	`
	return r.queryIDs(ctx, query, userID)
}

func (r *ownershipRepository) ActivePeers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT CASE WHEN requester_id = $1 THEN recipient_id ELSE requester_id END
		FROM shared_ownership
		WHERE (requester_id = $1 OR recipient_id = $1) AND status IN ('pending', 'accepted')
	`
	return r.queryIDs(ctx, query, userID)
}

func (r *ownershipRepository) queryIDs(ctx context.Context, query string, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
