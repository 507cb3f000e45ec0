package repository

import (
	"context"
	"testing"
	"time"

	entity "rentnest/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMessageRepository(db)

	msg := &entity.Message{
		ID:         uuid.New(),
		SenderID:   uuid.New(),
		ReceiverID: uuid.New(),
		Content:    "hello",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO messages").
		WithArgs(msg.ID, msg.SenderID, msg.ReceiverID, msg.Content, msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), msg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationReturnsAscendingWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMessageRepository(db)

	a := uuid.New()
	b := uuid.New()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "content", "created_at"}).
		AddRow(uuid.New(), a, b, "first", base).
		AddRow(uuid.New(), b, a, "second", base.Add(time.Minute))

	mock.ExpectQuery("FROM messages").
		WithArgs(a, b, nil, 50).
		WillReturnRows(rows)

	messages, err := repo.Conversation(context.Background(), a, b, 50, nil)
	require.NoError(t, err)

	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.True(t, messages[0].CreatedAt.Before(messages[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationSymmetricInPair(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMessageRepository(db)

	a := uuid.New()
	b := uuid.New()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	id1 := uuid.New()
	id2 := uuid.New()
	window := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "content", "created_at"}).
			AddRow(id1, a, b, "first", base).
			AddRow(id2, b, a, "second", base.Add(time.Minute))
	}

	mock.ExpectQuery("FROM messages").WithArgs(a, b, nil, 50).WillReturnRows(window())
	mock.ExpectQuery("FROM messages").WithArgs(b, a, nil, 50).WillReturnRows(window())

	ab, err := repo.Conversation(context.Background(), a, b, 50, nil)
	require.NoError(t, err)
	ba, err := repo.Conversation(context.Background(), b, a, 50, nil)
	require.NoError(t, err)

	assert.Equal(t, ab, ba, "both participants see the same exchange")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationPassesBeforeCursor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMessageRepository(db)

	a := uuid.New()
	b := uuid.New()
	before := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM messages").
		WithArgs(a, b, before, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "content", "created_at"}))

	messages, err := repo.Conversation(context.Background(), a, b, 20, &before)
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistinctPeers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMessageRepository(db)

	me := uuid.New()
	peer1 := uuid.New()
	peer2 := uuid.New()

	mock.ExpectQuery("SELECT DISTINCT").
		WithArgs(me).
		WillReturnRows(sqlmock.NewRows([]string{"peer"}).AddRow(peer1).AddRow(peer2))

	peers, err := repo.DistinctPeers(context.Background(), me)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{peer1, peer2}, peers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
