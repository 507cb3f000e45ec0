package entity

import (
	"time"

	"github.com/google/uuid"
)

type Listing struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Category     string     `db:"category" json:"category"`
	Description  string     `db:"description" json:"description"`
	PricePerHour float64    `db:"price_per_hour" json:"price_per_hour"`
	Address      string     `db:"address" json:"address"`
	Owner1       uuid.UUID  `db:"owner1" json:"owner1"`
	Owner2       *uuid.UUID `db:"owner2" json:"owner2,omitempty"`
	Picture1URL  string     `db:"picture1_url" json:"picture1_url"`
	Picture2URL  string     `db:"picture2_url" json:"picture2_url"`
	Picture3URL  string     `db:"picture3_url" json:"picture3_url"`
	Picture4URL  string     `db:"picture4_url" json:"picture4_url"`
	Status       string     `db:"status" json:"status"` // available, unavailable, removed
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateListingInput struct {
	Name         string
	Category     string
	Description  string
	PricePerHour float64
	Address      string
	SharedOwner  string // optional uuid of an accepted shared owner
}

type ListingFilter struct {
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}
