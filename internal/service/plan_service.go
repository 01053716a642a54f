package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fitplanhub/internal/auth"
	apperrors "fitplanhub/internal/errors"
	"fitplanhub/internal/model"
	"fitplanhub/internal/repository"
)

// CreatePlanInput carries the fields of a new plan.
type CreatePlanInput struct {
	Title        string
	Description  string
	Price        decimal.Decimal
	DurationDays int
}

// UpdatePlanInput carries a partial update; nil fields are left untouched.
type UpdatePlanInput struct {
	Title        *string
	Description  *string
	Price        *decimal.Decimal
	DurationDays *int
}

// PlanService is the plan catalog plus the visibility resolver: it decides
// per viewer whether a plan's full content may be shown.
type PlanService interface {
	Create(ctx context.Context, trainer *model.User, input CreatePlanInput) (*model.Plan, error)
	Update(ctx context.Context, trainer *model.User, planID uint, input UpdatePlanInput) (*model.Plan, error)
	Delete(ctx context.Context, trainer *model.User, planID uint) error
	ListByOwner(ctx context.Context, trainer *model.User) ([]model.Plan, error)
	ListPublic(ctx context.Context) ([]model.Plan, error)
	GetForViewer(ctx context.Context, viewer auth.Viewer, planID uint) (plan *model.Plan, entitled bool, err error)
}

type planService struct {
	planRepo repository.PlanRepository
	subRepo  repository.SubscriptionRepository
}

// NewPlanService creates a new plan service.
func NewPlanService(planRepo repository.PlanRepository, subRepo repository.SubscriptionRepository) PlanService {
	return &planService{planRepo: planRepo, subRepo: subRepo}
}

// Create stores a new plan owned by the calling trainer.
func (s *planService) Create(ctx context.Context, trainer *model.User, input CreatePlanInput) (*model.Plan, error) {
	if input.Price.IsNegative() {
		return nil, apperrors.ErrInvalidPrice
	}

	plan := &model.Plan{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		DurationDays: input.DurationDays,
		TrainerID:    trainer.ID,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return plan, nil
}

// Update applies a partial update to a plan the trainer owns. A plan owned by
// someone else reports as not found.
func (s *planService) Update(ctx context.Context, trainer *model.User, planID uint, input UpdatePlanInput) (*model.Plan, error) {
	plan, err := s.planRepo.FindByIDAndTrainer(ctx, planID, trainer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}

	if input.Title != nil {
		plan.Title = *input.Title
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperrors.ErrInvalidPrice
		}
		plan.Price = *input.Price
	}
	if input.DurationDays != nil {
		plan.DurationDays = *input.DurationDays
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return plan, nil
}

// Delete removes a plan the trainer owns together with its subscriptions.
func (s *planService) Delete(ctx context.Context, trainer *model.User, planID uint) error {
	plan, err := s.planRepo.FindByIDAndTrainer(ctx, planID, trainer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return fmt.Errorf("find plan: %w", err)
	}

	if err := s.planRepo.DeleteWithSubscriptions(ctx, plan); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// ListByOwner returns the trainer's own plans; owners always see full detail.
func (s *planService) ListByOwner(ctx context.Context, trainer *model.User) ([]model.Plan, error) {
	return s.planRepo.ListByTrainer(ctx, trainer.ID)
}

// ListPublic returns every plan for the anonymous browse list.
func (s *planService) ListPublic(ctx context.Context) ([]model.Plan, error) {
	return s.planRepo.ListAll(ctx)
}

// GetForViewer loads a plan and resolves the viewer's entitlement: full
// detail for the owning trainer and for subscribers, preview for everyone
// else including anonymous viewers.
func (s *planService) GetForViewer(ctx context.Context, viewer auth.Viewer, planID uint) (*model.Plan, bool, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrPlanNotFound
		}
		return nil, false, fmt.Errorf("find plan: %w", err)
	}

	if viewer.Anonymous() {
		return plan, false, nil
	}
	if viewer.ID() == plan.TrainerID {
		return plan, true, nil
	}

	subscribed, err := s.subRepo.Exists(ctx, viewer.ID(), plan.ID)
	if err != nil {
		return nil, false, fmt.Errorf("check subscription: %w", err)
	}
	return plan, subscribed, nil
}
