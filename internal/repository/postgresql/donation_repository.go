package repository

import (
	"context"
	"database/sql"

	entity "rentnest/internal/domain"

	"github.com/google/uuid"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) error
	Browse(ctx context.Context, category string, limit, offset int) ([]entity.Donation, error)
	ByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.Donation, error)
}

type donationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) DonationRepository {
	return &donationRepository{db: db}
}

const donationColumns = `id, name, category, description, address, profile_id,
	picture1_url, picture2_url, picture3_url, picture4_url, status, created_at, updated_at`

func (r *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	query := `
		INSERT INTO donations (id, name, category, description, address, profile_id,
			picture1_url, picture2_url, picture3_url, picture4_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		donation.ID, donation.Name, donation.Category, donation.Description,
		donation.Address, donation.ProfileID,
		donation.Picture1URL, donation.Picture2URL, donation.Picture3URL, donation.Picture4URL,
		donation.Status,
	)
	return err
}

func (r *donationRepository) Browse(ctx context.Context, category string, limit, offset int) ([]entity.Donation, error) {
	query := `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE status = 'available' AND ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, category, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDonations(rows)
}

func (r *donationRepository) ByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.Donation, error) {
	query := `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDonations(rows)
}

func scanDonations(rows *sql.Rows) ([]entity.Donation, error) {
	var donations []entity.Donation
	for rows.Next() {
		var d entity.Donation
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Category, &d.Description, &d.Address, &d.ProfileID,
			&d.Picture1URL, &d.Picture2URL, &d.Picture3URL, &d.Picture4URL,
			&d.Status, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}
