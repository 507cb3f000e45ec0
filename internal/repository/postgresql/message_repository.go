package repository

import (
	"context"
	"database/sql"
	"time"

	entity "rentnest/internal/domain"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *entity.Message) error
	// Conversation returns up to limit messages between the unordered pair
	// (a, b), newest window first when before is set, ascending by created_at.
	Conversation(ctx context.Context, a, b uuid.UUID, limit int, before *time.Time) ([]entity.Message, error)
	// DistinctPeers returns every user id this user has exchanged at least one
	// message with, in either direction.
	DistinctPeers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *entity.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Content, msg.CreatedAt,
	)
	return err
}

func (r *messageRepository) Conversation(ctx context.Context, a, b uuid.UUID, limit int, before *time.Time) ([]entity.Message, error) {
	// The inner query takes the newest window, the outer one restores the
	// ascending order the conversation view renders in.
	query := `
		SELECT id, sender_id, receiver_id, content, created_at FROM (
			SELECT id, sender_id, receiver_id, content, created_at
			FROM messages
			WHERE ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
			  AND ($3::timestamptz IS NULL OR created_at < $3)
			ORDER BY created_at DESC
			LIMIT $4
		) w
		ORDER BY created_at ASC
	`

	var beforeArg interface{}
	if before != nil {
		beforeArg = *before
	}

	rows, err := r.db.QueryContext(ctx, query, a, b, beforeArg, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *messageRepository) DistinctPeers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var peers []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		peers = append(peers, id)
	}
	return peers, rows.Err()
}
