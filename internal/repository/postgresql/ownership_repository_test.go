package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	entity "rentnest/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipCreateStoresCallerTimestamps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOwnershipRepository(db)

	now := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	rel := &entity.OwnershipRelation{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		RecipientID: uuid.New(),
		Status:      entity.OwnershipPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The row must carry the same stamps the caller echoes back to the client.
	mock.ExpectExec("INSERT INTO shared_ownership").
		WithArgs(rel.ID, rel.RequesterID, rel.RecipientID, rel.Status, rel.CreatedAt, rel.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), rel))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByPairReturnsRelation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOwnershipRepository(db)

	a := uuid.New()
	b := uuid.New()
	relID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "requester_id", "recipient_id", "status", "created_at", "updated_at"}).
		AddRow(relID, a, b, "pending", now, now)

	mock.ExpectQuery("FROM shared_ownership").
		WithArgs(a, b).
		WillReturnRows(rows)

	rel, err := repo.FindActiveByPair(context.Background(), a, b)
	require.NoError(t, err)
	require.NotNil(t, rel)
	assert.Equal(t, relID, rel.ID)
	assert.Equal(t, entity.OwnershipPending, rel.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByPairNoRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOwnershipRepository(db)

	a := uuid.New()
	b := uuid.New()

	mock.ExpectQuery("FROM shared_ownership").
		WithArgs(a, b).
		WillReturnError(sql.ErrNoRows)

	rel, err := repo.FindActiveByPair(context.Background(), a, b)
	require.NoError(t, err)
	assert.Nil(t, rel)
}

func TestUpdatePendingStatusReturnsRowID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOwnershipRepository(db)

	requester := uuid.New()
	recipient := uuid.New()
	relID := uuid.New()

	mock.ExpectQuery("UPDATE shared_ownership").
		WithArgs(entity.OwnershipAccepted, requester, recipient).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(relID))

	got, err := repo.UpdatePendingStatus(context.Background(), requester, recipient, entity.OwnershipAccepted)
	require.NoError(t, err)
	assert.Equal(t, relID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePendingStatusNoPendingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOwnershipRepository(db)

	mock.ExpectQuery("UPDATE shared_ownership").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.UpdatePendingStatus(context.Background(), uuid.New(), uuid.New(), entity.OwnershipDeclined)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestRemoveAcceptedReturnsRowID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOwnershipRepository(db)

	a := uuid.New()
	b := uuid.New()
	relID := uuid.New()

	mock.ExpectQuery("UPDATE shared_ownership").
		WithArgs(a, b).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(relID))

	got, err := repo.RemoveAccepted(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, relID, got)
}

func TestAcceptedPeers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOwnershipRepository(db)

	me := uuid.New()
	peer := uuid.New()

	mock.ExpectQuery("FROM shared_ownership").
		WithArgs(me).
		WillReturnRows(sqlmock.NewRows([]string{"peer"}).AddRow(peer))

	peers, err := repo.AcceptedPeers(context.Background(), me)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{peer}, peers)
}
