package service

import (
	"context"
	"fmt"

	"fitplanhub/internal/model"
	"fitplanhub/internal/repository"
)

// FeedItem is a plan in a user's feed with its purchase annotation. A plan
// may appear because its trainer is followed, because it was purchased, or
// both; IsPurchased tracks only the subscription.
type FeedItem struct {
	Plan        model.Plan
	IsPurchased bool
}

// FeedService composes the personalized feed: plans of followed trainers
// unioned with subscribed plans, deduplicated by plan id.
type FeedService interface {
	Feed(ctx context.Context, user *model.User) ([]FeedItem, error)
}

type feedService struct {
	planRepo   repository.PlanRepository
	subRepo    repository.SubscriptionRepository
	followRepo repository.FollowRepository
}

// NewFeedService creates a new feed service.
func NewFeedService(
	planRepo repository.PlanRepository,
	subRepo repository.SubscriptionRepository,
	followRepo repository.FollowRepository,
) FeedService {
	return &feedService{
		planRepo:   planRepo,
		subRepo:    subRepo,
		followRepo: followRepo,
	}
}

// Feed returns the user's feed ordered by plan creation time descending,
// then id ascending, so output is reproducible.
func (s *feedService) Feed(ctx context.Context, user *model.User) ([]FeedItem, error) {
	follows, err := s.followRepo.ListByFollower(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}
	trainerIDs := make([]uint, 0, len(follows))
	for _, f := range follows {
		trainerIDs = append(trainerIDs, f.TrainerID)
	}

	subscribedPlanIDs, err := s.subRepo.ListPlanIDsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	plans, err := s.planRepo.ListForFeed(ctx, trainerIDs, subscribedPlanIDs)
	if err != nil {
		return nil, fmt.Errorf("list feed plans: %w", err)
	}

	purchased := make(map[uint]bool, len(subscribedPlanIDs))
	for _, id := range subscribedPlanIDs {
		purchased[id] = true
	}

	items := make([]FeedItem, 0, len(plans))
	for _, plan := range plans {
		items = append(items, FeedItem{
			Plan:        plan,
			IsPurchased: purchased[plan.ID],
		})
	}
	return items, nil
}
