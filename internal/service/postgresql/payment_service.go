package service

import (
	"context"
	"errors"

	entity "rentnest/internal/domain"
	repo "rentnest/internal/repository/postgresql"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound = errors.New("no payment method on file")
	ErrNoRewards       = errors.New("no reward points yet")
)

type PaymentService struct {
	paymentRepo repo.PaymentRepository
	rewardRepo  repo.RewardRepository
}

func NewPaymentService(paymentRepo repo.PaymentRepository, rewardRepo repo.RewardRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, rewardRepo: rewardRepo}
}

func (s *PaymentService) GetPaymentMethod(ctx context.Context, userID uuid.UUID) (*entity.PaymentMethod, error) {
	pm, err := s.paymentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, ErrPaymentNotFound
	}
	return pm, nil
}

func (s *PaymentService) SavePaymentMethod(ctx context.Context, userID uuid.UUID, input entity.SavePaymentMethodInput) (*entity.PaymentMethod, error) {
	pm := &entity.PaymentMethod{
		UserID:         userID,
		PaymentType:    input.PaymentType,
		BillingAddress: input.BillingAddress,
		CardNumber:     input.CardNumber,
		CardExpiry:     input.CardExpiry,
		CardCVC:        input.CardCVC,
	}

	if err := s.paymentRepo.Upsert(ctx, pm); err != nil {
		return nil, err
	}
	return s.GetPaymentMethod(ctx, userID)
}

func (s *PaymentService) GetRewards(ctx context.Context, userID uuid.UUID) (*entity.RewardPoints, error) {
	rp, err := s.rewardRepo.GetByProfileID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, ErrNoRewards
	}
	return rp, nil
}
