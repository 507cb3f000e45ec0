package entity

import (
	"time"

	"github.com/google/uuid"
)

type OwnershipStatus string

const (
	OwnershipPending  OwnershipStatus = "pending"
	OwnershipAccepted OwnershipStatus = "accepted"
	OwnershipDeclined OwnershipStatus = "declined"
	OwnershipRemoved  OwnershipStatus = "removed"
)

// OwnershipRelation is a bilateral shared-ownership arrangement. The pair is
// ordered (requester, recipient) but queries treat it as unordered.
type OwnershipRelation struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	RequesterID uuid.UUID       `db:"requester_id" json:"requester_id"`
	RecipientID uuid.UUID       `db:"recipient_id" json:"recipient_id"`
	Status      OwnershipStatus `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

type SendOwnershipRequestInput struct {
	RecipientID uuid.UUID `json:"recipient_id" binding:"required"`
}

// Peer returns the other side of the relation relative to userID.
func (r *OwnershipRelation) Peer(userID uuid.UUID) uuid.UUID {
	if r.RequesterID == userID {
		return r.RecipientID
	}
	return r.RequesterID
}
