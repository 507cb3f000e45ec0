package repository

import (
	"context"
	"database/sql"

	entity "rentnest/internal/domain"
)

type QueryRepository interface {
	Create(ctx context.Context, q *entity.Query) error
	List(ctx context.Context) ([]entity.Query, error)
}

type queryRepository struct {
	db *sql.DB
}

func NewQueryRepository(db *sql.DB) QueryRepository {
	return &queryRepository{db: db}
}

func (r *queryRepository) Create(ctx context.Context, q *entity.Query) error {
	query := `
		INSERT INTO queries (id, user_id, title, content, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		q.ID, q.UserID, q.Title, q.Content, q.ImageURL,
	)
	return err
}

func (r *queryRepository) List(ctx context.Context) ([]entity.Query, error) {
	query := `
		SELECT id, user_id, title, content, image_url, created_at
		FROM queries
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []entity.Query
	for rows.Next() {
		var q entity.Query
		if err := rows.Scan(&q.ID, &q.UserID, &q.Title, &q.Content, &q.ImageURL, &q.CreatedAt); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}
