package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID `db:"id" json:"id"`
	SenderID   uuid.UUID `db:"sender_id" json:"sender_id"`
	ReceiverID uuid.UUID `db:"receiver_id" json:"receiver_id"`
	Content    string    `db:"content" json:"content"`
	CreatedAt  time.Time `db:"created_at" json:"timestamp"`
}

type SendMessageInput struct {
	ReceiverID uuid.UUID `json:"receiver_id" binding:"required"`
	Content    string    `json:"content" binding:"required"`
}

// ConversationPage is a window of a two-user conversation, ascending by time.
type ConversationPage struct {
	Messages   []Message  `json:"messages"`
	NextBefore *time.Time `json:"next_before,omitempty"`
}
