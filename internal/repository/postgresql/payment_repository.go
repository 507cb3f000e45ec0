package repository

import (
	"context"
	"database/sql"

	entity "rentnest/internal/domain"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.PaymentMethod, error)
	Upsert(ctx context.Context, pm *entity.PaymentMethod) error
}

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.PaymentMethod, error) {
	query := `
		SELECT user_id, payment_type, billing_address, card_number, card_expiry, card_cvc, updated_at
		FROM payment_methods
		WHERE user_id = $1
	`

	var pm entity.PaymentMethod
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&pm.UserID, &pm.PaymentType, &pm.BillingAddress,
		&pm.CardNumber, &pm.CardExpiry, &pm.CardCVC, &pm.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &pm, nil
}

func (r *paymentRepository) Upsert(ctx context.Context, pm *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (user_id, payment_type, billing_address, card_number, card_expiry, card_cvc, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			payment_type = EXCLUDED.payment_type,
			billing_address = EXCLUDED.billing_address,
			card_number = EXCLUDED.card_number,
			card_expiry = EXCLUDED.card_expiry,
			card_cvc = EXCLUDED.card_cvc,
			updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query,
		pm.UserID, pm.PaymentType, pm.BillingAddress,
		pm.CardNumber, pm.CardExpiry, pm.CardCVC,
	)
	return err
}
