package service

import (
	"context"
	"errors"
	"strings"
	"time"

	entity "rentnest/internal/domain"
	"rentnest/internal/realtime"
	repo "rentnest/internal/repository/postgresql"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrEmptyMessage     = errors.New("message content is empty")
	ErrSelfMessage      = errors.New("cannot send a message to yourself")
	ErrReceiverNotFound = errors.New("receiver not found")
)

const (
	defaultConversationLimit = 50
	maxConversationLimit     = 100
)

// FeedPublisher pushes committed rows to the receiver's realtime feed.
type FeedPublisher interface {
	Publish(userID uuid.UUID, event realtime.Event)
}

// ContactCache remembers who a user has recently exchanged messages with.
type ContactCache interface {
	Add(ctx context.Context, userID uuid.UUID, peerIDs ...uuid.UUID) error
	Members(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type MessageService struct {
	msgRepo     repo.MessageRepository
	userRepo    repo.UserRepository
	profileRepo repo.ProfileRepository
	feed        FeedPublisher
	contacts    ContactCache
	log         zerolog.Logger
}

func NewMessageService(
	msgRepo repo.MessageRepository,
	userRepo repo.UserRepository,
	profileRepo repo.ProfileRepository,
	feed FeedPublisher,
	contacts ContactCache,
	log zerolog.Logger,
) *MessageService {
	return &MessageService{
		msgRepo:     msgRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		feed:        feed,
		contacts:    contacts,
		log:         log,
	}
}

// Send validates and persists a message, then publishes it to the receiver's
// feed. The sender gets the committed row back and patches its own list; the
// feed targets the receiver only, so there is never a self-echo.
func (s *MessageService) Send(ctx context.Context, senderID uuid.UUID, input entity.SendMessageInput) (*entity.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if input.ReceiverID == senderID {
		return nil, ErrSelfMessage
	}

	receiver, err := s.userRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrReceiverNotFound
	}

	msg := &entity.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Publish(msg.ReceiverID, realtime.Event{Type: "message.created", Payload: msg})
	}

	s.cacheContact(ctx, senderID, msg.ReceiverID)
	s.cacheContact(ctx, msg.ReceiverID, senderID)

	return msg, nil
}

// Conversation returns a window of the exchange between user and other,
// ascending by time. Symmetric in its two user arguments.
func (s *MessageService) Conversation(ctx context.Context, userID, otherID uuid.UUID, limit int, before *time.Time) (*entity.ConversationPage, error) {
	if limit <= 0 {
		limit = defaultConversationLimit
	}
	if limit > maxConversationLimit {
		limit = maxConversationLimit
	}

	messages, err := s.msgRepo.Conversation(ctx, userID, otherID, limit, before)
	if err != nil {
		return nil, err
	}

	page := &entity.ConversationPage{Messages: messages}
	if len(messages) == limit {
		oldest := messages[0].CreatedAt
		page.NextBefore = &oldest
	}
	return page, nil
}

// Contacts lists the profiles of everyone the user has messaged with, served
// from the cache when warm and rebuilt from the messages table otherwise.
func (s *MessageService) Contacts(ctx context.Context, userID uuid.UUID) ([]entity.Profile, error) {
	var peers []uuid.UUID

	if s.contacts != nil {
		cached, err := s.contacts.Members(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("contact cache read failed")
		} else {
			peers = cached
		}
	}

	if len(peers) == 0 {
		derived, err := s.msgRepo.DistinctPeers(ctx, userID)
		if err != nil {
			return nil, err
		}
		peers = derived
		s.cacheContact(ctx, userID, peers...)
	}

	if len(peers) == 0 {
		return []entity.Profile{}, nil
	}

	return s.profileRepo.GetByIDs(ctx, peers)
}

func (s *MessageService) cacheContact(ctx context.Context, userID uuid.UUID, peerIDs ...uuid.UUID) {
	if s.contacts == nil || len(peerIDs) == 0 {
		return
	}
	if err := s.contacts.Add(ctx, userID, peerIDs...); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("contact cache write failed")
	}
}
