package service

import (
	"context"
	"errors"

	entity "rentnest/internal/domain"
	repo "rentnest/internal/repository/postgresql"
	"rentnest/internal/storage"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	profileRepo repo.ProfileRepository
	images      storage.ImageStore
}

func NewProfileService(profileRepo repo.ProfileRepository, images storage.ImageStore) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, images: images}
}

// Get returns the user's own profile. A user who never saved a profile gets
// ErrProfileNotFound so the client can prompt for the first save.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// Save upserts the profile fields. The picture URL is managed separately by
// UploadPicture and survives a field save.
func (s *ProfileService) Save(ctx context.Context, userID uuid.UUID, input entity.SaveProfileInput) (*entity.Profile, error) {
	existing, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &entity.Profile{
		ID:      userID,
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Birth:   input.Birth,
	}
	if existing != nil {
		p.ProfilePicture = existing.ProfilePicture
	}

	if err := s.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// Public returns the fields shown on another user's public view.
func (s *ProfileService) Public(ctx context.Context, id uuid.UUID) (*entity.PublicProfile, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return &entity.PublicProfile{
		ID:             p.ID,
		Name:           p.Name,
		Phone:          p.Phone,
		Address:        p.Address,
		ProfilePicture: p.ProfilePicture,
	}, nil
}

// Search lists other users by name substring, for the explore-people screen.
func (s *ProfileService) Search(ctx context.Context, userID uuid.UUID, nameQuery string) ([]entity.Profile, error) {
	profiles, err := s.profileRepo.Search(ctx, userID, nameQuery)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []entity.Profile{}
	}
	return profiles, nil
}

// UploadPicture stores the image and points the profile at its public URL.
func (s *ProfileService) UploadPicture(ctx context.Context, userID uuid.UUID, data []byte, ext, contentType string) (string, error) {
	key := storage.ObjectKey(userID, ext)
	url, err := s.images.Upload(ctx, storage.BucketProfilePictures, key, data, contentType)
	if err != nil {
		return "", err
	}

	if err := s.profileRepo.UpdatePicture(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
