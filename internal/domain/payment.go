package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod struct {
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	PaymentType    string    `db:"payment_type" json:"paymentType"`
	BillingAddress string    `db:"billing_address" json:"billingAddress"`
	CardNumber     string    `db:"card_number" json:"cardNumber"`
	CardExpiry     string    `db:"card_expiry" json:"cardExpiry"`
	CardCVC        string    `db:"card_cvc" json:"cardCVC"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

type SavePaymentMethodInput struct {
	PaymentType    string `json:"paymentType" binding:"required"`
	BillingAddress string `json:"billingAddress" binding:"required"`
	CardNumber     string `json:"cardNumber"`
	CardExpiry     string `json:"cardExpiry"`
	CardCVC        string `json:"cardCVC"`
}

type RewardPoints struct {
	ProfileID uuid.UUID `db:"profile_id" json:"profile_id"`
	Points    float64   `db:"points" json:"points"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
