package service

import (
	"context"
	"strings"
	"time"

	entity "rentnest/internal/domain"
	repo "rentnest/internal/repository/postgresql"

	"github.com/google/uuid"
)

type QueryService struct {
	queryRepo repo.QueryRepository
}

func NewQueryService(queryRepo repo.QueryRepository) *QueryService {
	return &QueryService{queryRepo: queryRepo}
}

// Submit files a help & support query. The image, when present, was uploaded
// beforehand and arrives as a URL.
func (s *QueryService) Submit(ctx context.Context, userID uuid.UUID, input entity.CreateQueryInput, imageURL string) (*entity.Query, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrAllFieldsRequired
	}

	q := &entity.Query{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.queryRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// List returns every query, newest first. Admin only.
func (s *QueryService) List(ctx context.Context) ([]entity.Query, error) {
	queries, err := s.queryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if queries == nil {
		queries = []entity.Query{}
	}
	return queries, nil
}
