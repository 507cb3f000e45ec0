package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	entity "rentnest/internal/domain"
	mongorepo "rentnest/internal/repository/mongodb"
	repo "rentnest/internal/repository/postgresql"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrSelfRequest       = errors.New("cannot request shared ownership with yourself")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrRelationExists    = errors.New("an active shared-ownership relation already exists for this pair")
	ErrRequestNotFound   = errors.New("no pending request for this pair")
	ErrRelationNotFound  = errors.New("no accepted relation for this pair")
)

type OwnershipService struct {
	ownershipRepo repo.OwnershipRepository
	userRepo      repo.UserRepository
	profileRepo   repo.ProfileRepository
	logRepo       mongorepo.LogRepository
	log           zerolog.Logger
}

func NewOwnershipService(
	ownershipRepo repo.OwnershipRepository,
	userRepo repo.UserRepository,
	profileRepo repo.ProfileRepository,
	logRepo mongorepo.LogRepository,
	log zerolog.Logger,
) *OwnershipService {
	return &OwnershipService{
		ownershipRepo: ownershipRepo,
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		logRepo:       logRepo,
		log:           log,
	}
}

// SendRequest creates a pending relation. At most one active (pending or
// accepted) relation may exist per unordered pair; the check here is backed
// by a partial unique index on the table, so a concurrent duplicate insert
// fails at the database rather than slipping through.
func (s *OwnershipService) SendRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (*entity.OwnershipRelation, error) {
	if requesterID == recipientID {
		return nil, ErrSelfRequest
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	existing, err := s.ownershipRepo.FindActiveByPair(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRelationExists
	}

	rel := &entity.OwnershipRelation{
		ID:          uuid.New(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      entity.OwnershipPending,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.ownershipRepo.Create(ctx, rel); err != nil {
		return nil, err
	}

	s.saveHistory(ctx, rel.ID, "", entity.OwnershipPending, requesterID)
	s.saveNotification(ctx, recipientID, "New shared-ownership request",
		"You received a shared-ownership request.", "ownership_request", rel.ID)

	return rel, nil
}

// AcceptRequest moves (requester -> recipient) from pending to accepted. Only
// the recipient can accept; a missing or non-pending row reports an error and
// creates nothing.
func (s *OwnershipService) AcceptRequest(ctx context.Context, recipientID, requesterID uuid.UUID) error {
	relID, err := s.ownershipRepo.UpdatePendingStatus(ctx, requesterID, recipientID, entity.OwnershipAccepted)
	if err != nil {
		return err
	}
	if relID == uuid.Nil {
		return ErrRequestNotFound
	}

	s.saveHistory(ctx, relID, entity.OwnershipPending, entity.OwnershipAccepted, recipientID)
	s.saveNotification(ctx, requesterID, "Request accepted",
		"Your shared-ownership request was accepted.", "ownership_accepted", relID)

	return nil
}

// DeclineRequest moves (requester -> recipient) from pending to declined.
func (s *OwnershipService) DeclineRequest(ctx context.Context, recipientID, requesterID uuid.UUID) error {
	relID, err := s.ownershipRepo.UpdatePendingStatus(ctx, requesterID, recipientID, entity.OwnershipDeclined)
	if err != nil {
		return err
	}
	if relID == uuid.Nil {
		return ErrRequestNotFound
	}

	s.saveHistory(ctx, relID, entity.OwnershipPending, entity.OwnershipDeclined, recipientID)
	return nil
}

// RemoveOwnership ends an accepted relation from either side. The row keeps
// its history with a terminal status instead of being deleted.
func (s *OwnershipService) RemoveOwnership(ctx context.Context, userID, peerID uuid.UUID) error {
	relID, err := s.ownershipRepo.RemoveAccepted(ctx, userID, peerID)
	if err != nil {
		return err
	}
	if relID == uuid.Nil {
		return ErrRelationNotFound
	}

	s.saveHistory(ctx, relID, entity.OwnershipAccepted, entity.OwnershipRemoved, userID)
	return nil
}

// Owners lists the profiles in an accepted relation with the user.
func (s *OwnershipService) Owners(ctx context.Context, userID uuid.UUID) ([]entity.Profile, error) {
	peers, err := s.ownershipRepo.AcceptedPeers(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(peers) == 0 {
		return []entity.Profile{}, nil
	}
	return s.profileRepo.GetByIDs(ctx, peers)
}

// Requests lists the profiles with a pending request addressed to the user.
func (s *OwnershipService) Requests(ctx context.Context, userID uuid.UUID) ([]entity.Profile, error) {
	requesters, err := s.ownershipRepo.PendingRequesters(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(requesters) == 0 {
		return []entity.Profile{}, nil
	}
	return s.profileRepo.GetByIDs(ctx, requesters)
}

// Candidates lists every profile not already tied to the user by an active
// relation, and not the user itself.
func (s *OwnershipService) Candidates(ctx context.Context, userID uuid.UUID) ([]entity.Profile, error) {
	active, err := s.ownershipRepo.ActivePeers(ctx, userID)
	if err != nil {
		return nil, err
	}
	exclude := append(active, userID)
	return s.profileRepo.GetAllExcept(ctx, exclude)
}

func (s *OwnershipService) saveHistory(ctx context.Context, relID uuid.UUID, from, to entity.OwnershipStatus, changedBy uuid.UUID) {
	if s.logRepo == nil {
		return
	}
	doc := &entity.StatusHistory{
		ID:          primitive.NewObjectID(),
		RelatedID:   relID.String(),
		RelatedType: "ownership",
		OldStatus:   string(from),
		NewStatus:   string(to),
		ChangedBy:   changedBy.String(),
		Timestamp:   time.Now().UTC(),
	}
	if err := s.logRepo.SaveStatusHistory(ctx, doc); err != nil {
		s.log.Warn().Err(err).Msg(fmt.Sprintf("failed to save ownership history (%s -> %s)", from, to))
	}
}

func (s *OwnershipService) saveNotification(ctx context.Context, userID uuid.UUID, title, message, notiType string, relatedID uuid.UUID) {
	if s.logRepo == nil {
		return
	}
	doc := &entity.Notification{
		UserID:    userID.String(),
		Type:      notiType,
		Title:     title,
		Message:   message,
		RelatedID: relatedID.String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.logRepo.SaveNotification(ctx, doc); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to save notification")
	}
}
