package repository

import (
	"context"

	"gorm.io/gorm"

	"fitplanhub/internal/model"
)

// SubscriptionRepository defines subscription persistence operations.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *model.Subscription) error
	Exists(ctx context.Context, userID, planID uint) (bool, error)
	ListPlanIDsByUser(ctx context.Context, userID uint) ([]uint, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) Exists(ctx context.Context, userID, planID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subscriptionRepository) ListPlanIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	var planIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("user_id = ?", userID).
		Pluck("plan_id", &planIDs).Error; err != nil {
		return nil, err
	}
	return planIDs, nil
}
