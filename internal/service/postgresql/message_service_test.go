package service

import (
	"context"
	"testing"
	"time"

	entity "rentnest/internal/domain"
	"rentnest/internal/realtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	created  []*entity.Message
	window   []entity.Message
	peers    []uuid.UUID
	gotLimit int
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *entity.Message) error {
	f.created = append(f.created, msg)
	return nil
}

func (f *fakeMessageRepo) Conversation(ctx context.Context, a, b uuid.UUID, limit int, before *time.Time) ([]entity.Message, error) {
	f.gotLimit = limit
	if len(f.window) > limit {
		return f.window[:limit], nil
	}
	return f.window, nil
}

func (f *fakeMessageRepo) DistinctPeers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.peers, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return f.profiles[id], nil
}

func (f *fakeProfileRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Profile, error) {
	var out []entity.Profile
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, p *entity.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) Search(ctx context.Context, excludeID uuid.UUID, nameQuery string) ([]entity.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) GetAllExcept(ctx context.Context, excludeIDs []uuid.UUID) ([]entity.Profile, error) {
	excluded := make(map[uuid.UUID]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var out []entity.Profile
	for id, p := range f.profiles {
		if !excluded[id] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) UpdatePicture(ctx context.Context, id uuid.UUID, url string) error {
	if p, ok := f.profiles[id]; ok {
		p.ProfilePicture = url
	}
	return nil
}

type fakeFeed struct {
	published map[uuid.UUID][]realtime.Event
}

func (f *fakeFeed) Publish(userID uuid.UUID, event realtime.Event) {
	if f.published == nil {
		f.published = make(map[uuid.UUID][]realtime.Event)
	}
	f.published[userID] = append(f.published[userID], event)
}

type fakeContacts struct {
	sets map[uuid.UUID][]uuid.UUID
}

func (f *fakeContacts) Add(ctx context.Context, userID uuid.UUID, peerIDs ...uuid.UUID) error {
	if f.sets == nil {
		f.sets = make(map[uuid.UUID][]uuid.UUID)
	}
	f.sets[userID] = append(f.sets[userID], peerIDs...)
	return nil
}

func (f *fakeContacts) Members(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.sets[userID], nil
}

func newMessageFixture() (*MessageService, *fakeMessageRepo, *fakeUserRepo, *fakeProfileRepo, *fakeFeed, *fakeContacts) {
	msgRepo := &fakeMessageRepo{}
	userRepo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	profileRepo := &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
	feed := &fakeFeed{}
	contacts := &fakeContacts{}
	svc := NewMessageService(msgRepo, userRepo, profileRepo, feed, contacts, zerolog.Nop())
	return svc, msgRepo, userRepo, profileRepo, feed, contacts
}

func TestSendRejectsEmptyContent(t *testing.T) {
	svc, _, _, _, _, _ := newMessageFixture()

	_, err := svc.Send(context.Background(), uuid.New(), entity.SendMessageInput{
		ReceiverID: uuid.New(),
		Content:    "   \n\t ",
	})

	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSendRejectsSelfMessage(t *testing.T) {
	svc, _, _, _, _, _ := newMessageFixture()
	me := uuid.New()

	_, err := svc.Send(context.Background(), me, entity.SendMessageInput{
		ReceiverID: me,
		Content:    "hello me",
	})

	assert.ErrorIs(t, err, ErrSelfMessage)
}

func TestSendRejectsUnknownReceiver(t *testing.T) {
	svc, _, _, _, _, _ := newMessageFixture()

	_, err := svc.Send(context.Background(), uuid.New(), entity.SendMessageInput{
		ReceiverID: uuid.New(),
		Content:    "anyone there",
	})

	assert.ErrorIs(t, err, ErrReceiverNotFound)
}

func TestSendPersistsAndPublishesToReceiverOnly(t *testing.T) {
	svc, msgRepo, userRepo, _, feed, contacts := newMessageFixture()

	sender := uuid.New()
	receiver := uuid.New()
	userRepo.users[receiver] = &entity.User{ID: receiver, Email: "peer@example.com"}

	msg, err := svc.Send(context.Background(), sender, entity.SendMessageInput{
		ReceiverID: receiver,
		Content:    "  is the bike still free tomorrow?  ",
	})
	require.NoError(t, err)

	require.Len(t, msgRepo.created, 1)
	assert.Equal(t, "is the bike still free tomorrow?", msg.Content)
	assert.Equal(t, sender, msg.SenderID)
	assert.Equal(t, receiver, msg.ReceiverID)
	assert.False(t, msg.CreatedAt.IsZero())

	require.Len(t, feed.published[receiver], 1)
	assert.Equal(t, "message.created", feed.published[receiver][0].Type)
	assert.Empty(t, feed.published[sender], "sender must not get a feed echo")

	assert.Contains(t, contacts.sets[sender], receiver)
	assert.Contains(t, contacts.sets[receiver], sender)
}

func TestConversationClampsLimit(t *testing.T) {
	svc, msgRepo, _, _, _, _ := newMessageFixture()

	_, err := svc.Conversation(context.Background(), uuid.New(), uuid.New(), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConversationLimit, msgRepo.gotLimit)

	_, err = svc.Conversation(context.Background(), uuid.New(), uuid.New(), 10_000, nil)
	require.NoError(t, err)
	assert.Equal(t, maxConversationLimit, msgRepo.gotLimit)
}

func TestConversationSetsCursorOnFullPage(t *testing.T) {
	svc, msgRepo, _, _, _, _ := newMessageFixture()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		msgRepo.window = append(msgRepo.window, entity.Message{
			ID:        uuid.New(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	page, err := svc.Conversation(context.Background(), uuid.New(), uuid.New(), 3, nil)
	require.NoError(t, err)
	require.NotNil(t, page.NextBefore)
	assert.Equal(t, base, *page.NextBefore, "cursor points at the oldest message of the page")

	// A short page means the history is exhausted.
	page, err = svc.Conversation(context.Background(), uuid.New(), uuid.New(), 10, nil)
	require.NoError(t, err)
	assert.Nil(t, page.NextBefore)
}

func TestContactsFallsBackToMessagesAndBackfills(t *testing.T) {
	svc, msgRepo, _, profileRepo, _, contacts := newMessageFixture()

	me := uuid.New()
	peer := uuid.New()
	msgRepo.peers = []uuid.UUID{peer}
	profileRepo.profiles[peer] = &entity.Profile{ID: peer, Name: "Dana"}

	got, err := svc.Contacts(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dana", got[0].Name)

	assert.Contains(t, contacts.sets[me], peer, "cold cache gets backfilled")
}

func TestContactsServedFromWarmCache(t *testing.T) {
	svc, msgRepo, _, profileRepo, _, contacts := newMessageFixture()

	me := uuid.New()
	peer := uuid.New()
	contacts.sets = map[uuid.UUID][]uuid.UUID{me: {peer}}
	profileRepo.profiles[peer] = &entity.Profile{ID: peer, Name: "Riley"}
	msgRepo.peers = nil

	got, err := svc.Contacts(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Riley", got[0].Name)
}

func TestContactsEmptyForNewUser(t *testing.T) {
	svc, _, _, _, _, _ := newMessageFixture()

	got, err := svc.Contacts(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}
