package repository

import (
	"context"

	"gorm.io/gorm"

	"fitplanhub/internal/model"
)

// FollowRepository defines follow persistence operations.
type FollowRepository interface {
	Create(ctx context.Context, follow *model.Follow) error
	Delete(ctx context.Context, userID, trainerID uint) (bool, error)
	Exists(ctx context.Context, userID, trainerID uint) (bool, error)
	ListByFollower(ctx context.Context, userID uint) ([]model.Follow, error)
	CountByTrainer(ctx context.Context, trainerID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *model.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

// Delete removes the follow and reports whether one existed.
func (r *followRepository) Delete(ctx context.Context, userID, trainerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND trainer_id = ?", userID, trainerID).
		Delete(&model.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Exists(ctx context.Context, userID, trainerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("user_id = ? AND trainer_id = ?", userID, trainerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepository) ListByFollower(ctx context.Context, userID uint) ([]model.Follow, error) {
	var follows []model.Follow
	if err := r.db.WithContext(ctx).
		Preload("Trainer").
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}

func (r *followRepository) CountByTrainer(ctx context.Context, trainerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("trainer_id = ?", trainerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
