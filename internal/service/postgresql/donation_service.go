package service

import (
	"context"
	"time"

	entity "rentnest/internal/domain"
	repo "rentnest/internal/repository/postgresql"

	"github.com/google/uuid"
)

type DonationService struct {
	donationRepo repo.DonationRepository
}

func NewDonationService(donationRepo repo.DonationRepository) *DonationService {
	return &DonationService{donationRepo: donationRepo}
}

func (s *DonationService) Create(ctx context.Context, profileID uuid.UUID, input entity.CreateDonationInput, imageURLs []string) (*entity.Donation, error) {
	if input.Name == "" || input.Category == "" || input.Address == "" {
		return nil, ErrAllFieldsRequired
	}

	donation := &entity.Donation{
		ID:          uuid.New(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Address:     input.Address,
		ProfileID:   profileID,
		Status:      "available",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	slots := []*string{
		&donation.Picture1URL, &donation.Picture2URL,
		&donation.Picture3URL, &donation.Picture4URL,
	}
	for i, url := range imageURLs {
		if i >= len(slots) {
			break
		}
		*slots[i] = url
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

func (s *DonationService) Browse(ctx context.Context, category string, limit, offset int) ([]entity.Donation, error) {
	if limit <= 0 {
		limit = defaultBrowseLimit
	}
	if limit > maxBrowseLimit {
		limit = maxBrowseLimit
	}
	if offset < 0 {
		offset = 0
	}

	donations, err := s.donationRepo.Browse(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []entity.Donation{}
	}
	return donations, nil
}

func (s *DonationService) Mine(ctx context.Context, profileID uuid.UUID) ([]entity.Donation, error) {
	donations, err := s.donationRepo.ByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []entity.Donation{}
	}
	return donations, nil
}
