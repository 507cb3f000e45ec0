package service

import (
	"context"
	"errors"

	entity "rentnest/internal/domain"
	repo "rentnest/internal/repository/postgresql"
	utils "rentnest/pkg"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInactiveAccount     = errors.New("account is inactive")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
)

type AuthService struct {
	userRepo repo.UserRepository
}

func NewAuthService(userRepo repo.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) Register(ctx context.Context, input *entity.RegisterInput) (*entity.UserResp, error) {
	if u, err := s.userRepo.GetByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if u != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         "member",
		IsActive:     true,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return &entity.UserResp{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	tokenString, err := utils.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	refresh, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &entity.LoginResponse{
		Token:        tokenString,
		RefreshToken: refresh,
		User: entity.UserResp{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", ErrInvalidUserID
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	return utils.GenerateToken(user)
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*entity.UserResp, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &entity.UserResp{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]entity.UserResp, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]entity.UserResp, 0, len(users))
	for _, u := range users {
		resp = append(resp, entity.UserResp{ID: u.ID, Email: u.Email, Role: u.Role})
	}
	return resp, nil
}
