package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"fitplanhub/internal/auth"
	"fitplanhub/internal/cache"
	apperrors "fitplanhub/internal/errors"
	"fitplanhub/internal/model"
	"fitplanhub/internal/repository"
)

const (
	followersCountTTL        = 5 * time.Minute
	trainerDirectoryTTL      = time.Minute
	trainerDirectoryCacheKey = "trainers:directory"
)

func followersCountCacheKey(trainerID uint) string {
	return fmt.Sprintf("trainer:%d:followers", trainerID)
}

// TrainerProfile is a trainer's public profile resolved for a viewer. The
// follower count is always public; IsFollowing is false for anonymous
// viewers.
type TrainerProfile struct {
	Trainer        *model.User
	Plans          []model.Plan
	FollowersCount int64
	IsFollowing    bool
}

// TrainerService resolves trainer profiles and the public directory.
type TrainerService interface {
	Profile(ctx context.Context, viewer auth.Viewer, trainerID uint) (*TrainerProfile, error)
	ListTrainers(ctx context.Context) ([]model.User, error)
}

type trainerService struct {
	userRepo   repository.UserRepository
	planRepo   repository.PlanRepository
	followRepo repository.FollowRepository
	cache      *cache.Client
}

// NewTrainerService creates a new trainer service.
func NewTrainerService(
	userRepo repository.UserRepository,
	planRepo repository.PlanRepository,
	followRepo repository.FollowRepository,
	cache *cache.Client,
) TrainerService {
	return &trainerService{
		userRepo:   userRepo,
		planRepo:   planRepo,
		followRepo: followRepo,
		cache:      cache,
	}
}

// Profile loads a trainer's profile with plan previews, the follower count,
// and the viewer-dependent following flag.
func (s *trainerService) Profile(ctx context.Context, viewer auth.Viewer, trainerID uint) (*TrainerProfile, error) {
	trainer, err := s.userRepo.FindTrainerByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrainerNotFound
		}
		return nil, fmt.Errorf("find trainer: %w", err)
	}

	plans, err := s.planRepo.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	count, err := s.followersCount(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	isFollowing := false
	if !viewer.Anonymous() {
		isFollowing, err = s.followRepo.Exists(ctx, viewer.ID(), trainerID)
		if err != nil {
			return nil, fmt.Errorf("check follow: %w", err)
		}
	}

	return &TrainerProfile{
		Trainer:        trainer,
		Plans:          plans,
		FollowersCount: count,
		IsFollowing:    isFollowing,
	}, nil
}

// followersCount serves the count from Redis when fresh; follow and unfollow
// invalidate the key.
func (s *trainerService) followersCount(ctx context.Context, trainerID uint) (int64, error) {
	key := followersCountCacheKey(trainerID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		if count, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			return count, nil
		}
	}

	count, err := s.followRepo.CountByTrainer(ctx, trainerID)
	if err != nil {
		return 0, err
	}

	_ = s.cache.Set(ctx, key, []byte(strconv.FormatInt(count, 10)), followersCountTTL)
	return count, nil
}

// ListTrainers returns the public trainer directory, cached briefly since it
// only changes when a trainer signs up.
func (s *trainerService) ListTrainers(ctx context.Context) ([]model.User, error) {
	if data, _ := s.cache.Get(ctx, trainerDirectoryCacheKey); data != nil {
		var cached []model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	trainers, err := s.userRepo.ListTrainers(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(trainers); err == nil {
		_ = s.cache.Set(ctx, trainerDirectoryCacheKey, payload, trainerDirectoryTTL)
	}
	return trainers, nil
}
