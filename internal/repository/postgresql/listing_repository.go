package repository

import (
	"context"
	"database/sql"

	entity "rentnest/internal/domain"

	"github.com/google/uuid"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	Browse(ctx context.Context, filter entity.ListingFilter) ([]entity.Listing, error)
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Listing, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
}

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, name, category, description, price_per_hour, address,
	owner1, owner2, picture1_url, picture2_url, picture3_url, picture4_url,
	status, created_at, updated_at`

func (r *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	query := `
		INSERT INTO product_listings (id, name, category, description, price_per_hour, address,
			owner1, owner2, picture1_url, picture2_url, picture3_url, picture4_url,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		listing.ID, listing.Name, listing.Category, listing.Description,
		listing.PricePerHour, listing.Address, listing.Owner1, listing.Owner2,
		listing.Picture1URL, listing.Picture2URL, listing.Picture3URL, listing.Picture4URL,
		listing.Status,
	)
	return err
}

func (r *listingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM product_listings WHERE id = $1`

	var l entity.Listing
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Category, &l.Description, &l.PricePerHour, &l.Address,
		&l.Owner1, &l.Owner2, &l.Picture1URL, &l.Picture2URL, &l.Picture3URL, &l.Picture4URL,
		&l.Status, &l.CreatedAt, &l.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func (r *listingRepository) Browse(ctx context.Context, filter entity.ListingFilter) ([]entity.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM product_listings
		WHERE status = 'available' AND ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, filter.Category, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanListings(rows)
}

func (r *listingRepository) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM product_listings
		WHERE owner1 = $1 OR owner2 = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanListings(rows)
}

func (r *listingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	query := `UPDATE product_listings SET status = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanListings(rows *sql.Rows) ([]entity.Listing, error) {
	var listings []entity.Listing
	for rows.Next() {
		var l entity.Listing
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Category, &l.Description, &l.PricePerHour, &l.Address,
			&l.Owner1, &l.Owner2, &l.Picture1URL, &l.Picture2URL, &l.Picture3URL, &l.Picture4URL,
			&l.Status, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
