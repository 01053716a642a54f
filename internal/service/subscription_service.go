package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "fitplanhub/internal/errors"
	"fitplanhub/internal/model"
	"fitplanhub/internal/repository"
)

// SubscriptionService handles plan subscriptions. There is no payment step
// and no unsubscribe flow; subscriptions only disappear when their plan is
// deleted.
type SubscriptionService interface {
	Subscribe(ctx context.Context, user *model.User, planID uint) (*model.Subscription, error)
}

type subscriptionService struct {
	planRepo repository.PlanRepository
	subRepo  repository.SubscriptionRepository
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(planRepo repository.PlanRepository, subRepo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{planRepo: planRepo, subRepo: subRepo}
}

// Subscribe creates a subscription for the user. The (user, plan) unique
// index turns a concurrent duplicate into gorm.ErrDuplicatedKey rather than
// a second row.
func (s *subscriptionService) Subscribe(ctx context.Context, user *model.User, planID uint) (*model.Subscription, error) {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}

	sub := &model.Subscription{
		UserID: user.ID,
		PlanID: planID,
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return sub, nil
}
