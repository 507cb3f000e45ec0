package service

import (
	"context"
	"errors"
	"time"

	entity "rentnest/internal/domain"
	mongorepo "rentnest/internal/repository/mongodb"
	repo "rentnest/internal/repository/postgresql"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrAllFieldsRequired = errors.New("all fields are required")
	ErrInvalidPrice      = errors.New("price per hour must be positive")
	ErrInvalidOwnerID    = errors.New("invalid shared owner id")
	ErrNotSharedOwner    = errors.New("shared owner must be an accepted shared-ownership peer")
	ErrListingNotFound   = errors.New("listing not found")
	ErrInvalidStatus     = errors.New("invalid listing status")
)

const (
	defaultBrowseLimit = 20
	maxBrowseLimit     = 100
)

var listingStatuses = map[string]bool{
	"available":   true,
	"unavailable": true,
	"removed":     true,
}

type ListingService struct {
	listingRepo   repo.ListingRepository
	ownershipRepo repo.OwnershipRepository
	logRepo       mongorepo.LogRepository
	log           zerolog.Logger
}

func NewListingService(
	listingRepo repo.ListingRepository,
	ownershipRepo repo.OwnershipRepository,
	logRepo mongorepo.LogRepository,
	log zerolog.Logger,
) *ListingService {
	return &ListingService{
		listingRepo:   listingRepo,
		ownershipRepo: ownershipRepo,
		logRepo:       logRepo,
		log:           log,
	}
}

// Create inserts a listing owned by ownerID. Image URLs come from uploads
// performed before this call; the uploads and the insert are sequential
// writes with no shared transaction.
func (s *ListingService) Create(ctx context.Context, ownerID uuid.UUID, input entity.CreateListingInput, imageURLs []string) (*entity.Listing, error) {
	if input.Name == "" || input.Category == "" || input.Address == "" {
		return nil, ErrAllFieldsRequired
	}
	if input.PricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}

	var owner2 *uuid.UUID
	if input.SharedOwner != "" {
		id, err := uuid.Parse(input.SharedOwner)
		if err != nil {
			return nil, ErrInvalidOwnerID
		}

		rel, err := s.ownershipRepo.FindActiveByPair(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}
		if rel == nil || rel.Status != entity.OwnershipAccepted {
			return nil, ErrNotSharedOwner
		}
		owner2 = &id
	}

	listing := &entity.Listing{
		ID:           uuid.New(),
		Name:         input.Name,
		Category:     input.Category,
		Description:  input.Description,
		PricePerHour: input.PricePerHour,
		Address:      input.Address,
		Owner1:       ownerID,
		Owner2:       owner2,
		Status:       "available",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	assignPictures(listing, imageURLs)

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) Browse(ctx context.Context, filter entity.ListingFilter) ([]entity.Listing, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultBrowseLimit
	}
	if filter.Limit > maxBrowseLimit {
		filter.Limit = maxBrowseLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	listings, err := s.listingRepo.Browse(ctx, filter)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []entity.Listing{}
	}
	return listings, nil
}

func (s *ListingService) Mine(ctx context.Context, ownerID uuid.UUID) ([]entity.Listing, error) {
	listings, err := s.listingRepo.ByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []entity.Listing{}
	}
	return listings, nil
}

// Moderate is the admin path for forcing a listing status.
func (s *ListingService) Moderate(ctx context.Context, adminID, listingID uuid.UUID, status string) error {
	if !listingStatuses[status] {
		return ErrInvalidStatus
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}

	if _, err := s.listingRepo.UpdateStatus(ctx, listingID, status); err != nil {
		return err
	}

	if s.logRepo != nil {
		doc := &entity.StatusHistory{
			ID:          primitive.NewObjectID(),
			RelatedID:   listingID.String(),
			RelatedType: "listing",
			OldStatus:   listing.Status,
			NewStatus:   status,
			ChangedBy:   adminID.String(),
			Timestamp:   time.Now().UTC(),
		}
		if err := s.logRepo.SaveStatusHistory(ctx, doc); err != nil {
			s.log.Warn().Err(err).Str("listing_id", listingID.String()).Msg("failed to save listing history")
		}
	}
	return nil
}

func assignPictures(listing *entity.Listing, urls []string) {
	slots := []*string{
		&listing.Picture1URL, &listing.Picture2URL,
		&listing.Picture3URL, &listing.Picture4URL,
	}
	for i, url := range urls {
		if i >= len(slots) {
			break
		}
		*slots[i] = url
	}
}
