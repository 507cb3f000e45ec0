package service

import (
	"context"
	"testing"

	entity "rentnest/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOwnershipRepo struct {
	created    []*entity.OwnershipRelation
	active     *entity.OwnershipRelation
	pendingID  uuid.UUID
	acceptedID uuid.UUID
	accepted   []uuid.UUID
	requesters []uuid.UUID
	activeIDs  []uuid.UUID
}

func (f *fakeOwnershipRepo) Create(ctx context.Context, rel *entity.OwnershipRelation) error {
	f.created = append(f.created, rel)
	return nil
}

func (f *fakeOwnershipRepo) FindActiveByPair(ctx context.Context, a, b uuid.UUID) (*entity.OwnershipRelation, error) {
	return f.active, nil
}

func (f *fakeOwnershipRepo) UpdatePendingStatus(ctx context.Context, requester, recipient uuid.UUID, to entity.OwnershipStatus) (uuid.UUID, error) {
	if f.pendingID == uuid.Nil {
		return uuid.Nil, nil
	}
	remaining := f.requesters[:0]
	for _, r := range f.requesters {
		if r != requester {
			remaining = append(remaining, r)
		}
	}
	f.requesters = remaining
	return f.pendingID, nil
}

func (f *fakeOwnershipRepo) RemoveAccepted(ctx context.Context, a, b uuid.UUID) (uuid.UUID, error) {
	return f.acceptedID, nil
}

func (f *fakeOwnershipRepo) AcceptedPeers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.accepted, nil
}

func (f *fakeOwnershipRepo) PendingRequesters(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.requesters, nil
}

func (f *fakeOwnershipRepo) ActivePeers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.activeIDs, nil
}

func newOwnershipFixture() (*OwnershipService, *fakeOwnershipRepo, *fakeUserRepo, *fakeProfileRepo) {
	ownRepo := &fakeOwnershipRepo{}
	userRepo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	profileRepo := &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
	svc := NewOwnershipService(ownRepo, userRepo, profileRepo, nil, zerolog.Nop())
	return svc, ownRepo, userRepo, profileRepo
}

func TestSendRequestRejectsSelf(t *testing.T) {
	svc, _, _, _ := newOwnershipFixture()
	me := uuid.New()

	_, err := svc.SendRequest(context.Background(), me, me)
	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestSendRequestRejectsUnknownRecipient(t *testing.T) {
	svc, _, _, _ := newOwnershipFixture()

	_, err := svc.SendRequest(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestSendRequestRejectsDuplicateActivePair(t *testing.T) {
	svc, ownRepo, userRepo, _ := newOwnershipFixture()

	requester := uuid.New()
	recipient := uuid.New()
	userRepo.users[recipient] = &entity.User{ID: recipient}
	ownRepo.active = &entity.OwnershipRelation{
		ID: uuid.New(), RequesterID: recipient, RecipientID: requester,
		Status: entity.OwnershipPending,
	}

	_, err := svc.SendRequest(context.Background(), requester, recipient)
	assert.ErrorIs(t, err, ErrRelationExists)
	assert.Empty(t, ownRepo.created)
}

func TestSendRequestCreatesPendingRelation(t *testing.T) {
	svc, ownRepo, userRepo, _ := newOwnershipFixture()

	requester := uuid.New()
	recipient := uuid.New()
	userRepo.users[recipient] = &entity.User{ID: recipient}

	rel, err := svc.SendRequest(context.Background(), requester, recipient)
	require.NoError(t, err)

	require.Len(t, ownRepo.created, 1)
	assert.Equal(t, entity.OwnershipPending, rel.Status)
	assert.Equal(t, requester, rel.RequesterID)
	assert.Equal(t, recipient, rel.RecipientID)
}

func TestAcceptRequestReportsMissingRow(t *testing.T) {
	svc, _, _, _ := newOwnershipFixture()

	err := svc.AcceptRequest(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestAcceptRequestSucceeds(t *testing.T) {
	svc, ownRepo, _, _ := newOwnershipFixture()
	ownRepo.pendingID = uuid.New()

	err := svc.AcceptRequest(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
}

func TestDeclineRequestReportsMissingRow(t *testing.T) {
	svc, _, _, _ := newOwnershipFixture()

	err := svc.DeclineRequest(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestDeclineRequestRemovesItFromPendingList(t *testing.T) {
	svc, ownRepo, _, profileRepo := newOwnershipFixture()

	recipient := uuid.New()
	requester := uuid.New()
	ownRepo.pendingID = uuid.New()
	ownRepo.requesters = []uuid.UUID{requester}
	profileRepo.profiles[requester] = &entity.Profile{ID: requester, Name: "Alex"}

	err := svc.DeclineRequest(context.Background(), recipient, requester)
	require.NoError(t, err)

	requests, err := svc.Requests(context.Background(), recipient)
	require.NoError(t, err)
	assert.Empty(t, requests, "a declined request must leave the incoming list")
}

func TestRemoveOwnershipReportsMissingRelation(t *testing.T) {
	svc, _, _, _ := newOwnershipFixture()

	err := svc.RemoveOwnership(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrRelationNotFound)
}

func TestRemoveOwnershipSucceeds(t *testing.T) {
	svc, ownRepo, _, _ := newOwnershipFixture()
	ownRepo.acceptedID = uuid.New()

	err := svc.RemoveOwnership(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
}

func TestOwnersResolvesProfiles(t *testing.T) {
	svc, ownRepo, _, profileRepo := newOwnershipFixture()

	peer := uuid.New()
	ownRepo.accepted = []uuid.UUID{peer}
	profileRepo.profiles[peer] = &entity.Profile{ID: peer, Name: "Sam"}

	owners, err := svc.Owners(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "Sam", owners[0].Name)
}

func TestOwnersEmptyWithoutRelations(t *testing.T) {
	svc, _, _, _ := newOwnershipFixture()

	owners, err := svc.Owners(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, owners)
}

func TestCandidatesExcludesActivePeersAndSelf(t *testing.T) {
	svc, ownRepo, _, profileRepo := newOwnershipFixture()

	me := uuid.New()
	activePeer := uuid.New()
	stranger := uuid.New()

	ownRepo.activeIDs = []uuid.UUID{activePeer}
	profileRepo.profiles[me] = &entity.Profile{ID: me, Name: "Me"}
	profileRepo.profiles[activePeer] = &entity.Profile{ID: activePeer, Name: "Tied"}
	profileRepo.profiles[stranger] = &entity.Profile{ID: stranger, Name: "New"}

	candidates, err := svc.Candidates(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, stranger, candidates[0].ID)
}
