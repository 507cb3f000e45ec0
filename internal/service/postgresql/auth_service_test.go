package service

import (
	"context"
	"testing"

	entity "rentnest/internal/domain"
	utils "rentnest/pkg"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	userRepo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	return NewAuthService(userRepo), userRepo
}

func TestRegisterCreatesMember(t *testing.T) {
	svc, userRepo := newAuthFixture()

	resp, err := svc.Register(context.Background(), &entity.RegisterInput{
		Email:    "new@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", resp.Email)
	assert.Equal(t, "member", resp.Role)

	stored := userRepo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "longenough", stored.PasswordHash, "password must be hashed")
	assert.True(t, stored.IsActive)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, userRepo := newAuthFixture()

	existing := uuid.New()
	userRepo.users[existing] = &entity.User{ID: existing, Email: "taken@example.com"}

	_, err := svc.Register(context.Background(), &entity.RegisterInput{
		Email:    "taken@example.com",
		Password: "longenough",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, userRepo := newAuthFixture()

	hash, err := utils.HashPassword("rightpassword")
	require.NoError(t, err)

	id := uuid.New()
	userRepo.users[id] = &entity.User{
		ID: id, Email: "user@example.com", PasswordHash: hash, IsActive: true,
	}

	_, err = svc.Login(context.Background(), "user@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	svc, userRepo := newAuthFixture()

	hash, err := utils.HashPassword("rightpassword")
	require.NoError(t, err)

	id := uuid.New()
	userRepo.users[id] = &entity.User{
		ID: id, Email: "blocked@example.com", PasswordHash: hash, IsActive: false,
	}

	_, err = svc.Login(context.Background(), "blocked@example.com", "rightpassword")
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

func TestLoginIssuesTokens(t *testing.T) {
	svc, userRepo := newAuthFixture()

	hash, err := utils.HashPassword("rightpassword")
	require.NoError(t, err)

	id := uuid.New()
	userRepo.users[id] = &entity.User{
		ID: id, Email: "user@example.com", PasswordHash: hash, Role: "member", IsActive: true,
	}

	resp, err := svc.Login(context.Background(), "user@example.com", "rightpassword")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, id, resp.User.ID)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "member", claims.Role)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, userRepo := newAuthFixture()

	id := uuid.New()
	user := &entity.User{ID: id, Email: "user@example.com", Role: "member", IsActive: true}
	userRepo.users[id] = user

	refresh, err := utils.GenerateRefreshToken(user)
	require.NoError(t, err)

	token, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
}
