package entity

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	Address     string    `db:"address" json:"address"`
	ProfileID   uuid.UUID `db:"profile_id" json:"profile_id"`
	Picture1URL string    `db:"picture1_url" json:"picture1_url"`
	Picture2URL string    `db:"picture2_url" json:"picture2_url"`
	Picture3URL string    `db:"picture3_url" json:"picture3_url"`
	Picture4URL string    `db:"picture4_url" json:"picture4_url"`
	Status      string    `db:"status" json:"status"` // available, claimed
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type CreateDonationInput struct {
	Name        string
	Category    string
	Description string
	Address     string
}
