package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fitplanhub/internal/cache"
	apperrors "fitplanhub/internal/errors"
	"fitplanhub/internal/model"
	"fitplanhub/internal/repository"
)

// FollowService handles the follow relationship between users and trainers.
type FollowService interface {
	Follow(ctx context.Context, follower *model.User, trainerID uint) error
	Unfollow(ctx context.Context, follower *model.User, trainerID uint) error
	ListFollowing(ctx context.Context, follower *model.User) ([]model.Follow, error)
}

type followService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	cache      *cache.Client
}

// NewFollowService creates a new follow service.
func NewFollowService(userRepo repository.UserRepository, followRepo repository.FollowRepository, cache *cache.Client) FollowService {
	return &followService{
		userRepo:   userRepo,
		followRepo: followRepo,
		cache:      cache,
	}
}

// Follow creates a follow edge from a regular user to a trainer. Trainers may
// not follow anyone, targets must be trainers, and self-follows are rejected.
// The (user, trainer) unique index catches concurrent duplicates.
func (s *followService) Follow(ctx context.Context, follower *model.User, trainerID uint) error {
	if follower.Role == model.RoleTrainer {
		return apperrors.ErrTrainerCannotFollow
	}

	if _, err := s.userRepo.FindTrainerByID(ctx, trainerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTrainerNotFound
		}
		return fmt.Errorf("find trainer: %w", err)
	}

	if follower.ID == trainerID {
		return apperrors.ErrSelfFollow
	}

	follow := &model.Follow{
		UserID:    follower.ID,
		TrainerID: trainerID,
	}

	if err := s.followRepo.Create(ctx, follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyFollowing
		}
		return fmt.Errorf("create follow: %w", err)
	}

	_ = s.cache.Delete(ctx, followersCountCacheKey(trainerID))
	return nil
}

// Unfollow removes the follow edge if it exists.
func (s *followService) Unfollow(ctx context.Context, follower *model.User, trainerID uint) error {
	deleted, err := s.followRepo.Delete(ctx, follower.ID, trainerID)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFollowing
	}

	_ = s.cache.Delete(ctx, followersCountCacheKey(trainerID))
	return nil
}

// ListFollowing returns the trainers the user follows, most recent first.
func (s *followService) ListFollowing(ctx context.Context, follower *model.User) ([]model.Follow, error) {
	return s.followRepo.ListByFollower(ctx, follower.ID)
}
