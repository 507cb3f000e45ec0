package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusHistory records a single status transition of an ownership relation
// or a listing, kept for audit even after the row reaches a terminal status.
type StatusHistory struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	RelatedID   string             `bson:"related_id" json:"relatedId"`
	RelatedType string             `bson:"related_type" json:"relatedType"` // ownership, listing
	OldStatus   string             `bson:"old_status" json:"oldStatus"`
	NewStatus   string             `bson:"new_status" json:"newStatus"`
	ChangedBy   string             `bson:"changed_by" json:"changedBy"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
