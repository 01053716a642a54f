package repository

import (
	"context"

	"gorm.io/gorm"

	"fitplanhub/internal/model"
)

// PlanRepository defines plan persistence operations.
type PlanRepository interface {
	Create(ctx context.Context, plan *model.Plan) error
	Update(ctx context.Context, plan *model.Plan) error
	FindByID(ctx context.Context, id uint) (*model.Plan, error)
	FindByIDAndTrainer(ctx context.Context, id, trainerID uint) (*model.Plan, error)
	ListAll(ctx context.Context) ([]model.Plan, error)
	ListByTrainer(ctx context.Context, trainerID uint) ([]model.Plan, error)
	ListForFeed(ctx context.Context, trainerIDs, planIDs []uint) ([]model.Plan, error)
	DeleteWithSubscriptions(ctx context.Context, plan *model.Plan) error
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *model.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) Update(ctx context.Context, plan *model.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *planRepository) FindByID(ctx context.Context, id uint) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).Preload("Trainer").First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindByIDAndTrainer checks existence and ownership in one predicate so a
// plan owned by someone else reports exactly like a missing plan.
func (r *planRepository) FindByIDAndTrainer(ctx context.Context, id, trainerID uint) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).
		Where("id = ? AND trainer_id = ?", id, trainerID).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) ListAll(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	if err := r.db.WithContext(ctx).
		Preload("Trainer").
		Order("created_at DESC, id ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) ListByTrainer(ctx context.Context, trainerID uint) ([]model.Plan, error) {
	var plans []model.Plan
	if err := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("created_at DESC, id ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// ListForFeed returns the deduplicated union of plans by the given trainers
// and plans with the given ids, in deterministic feed order.
func (r *planRepository) ListForFeed(ctx context.Context, trainerIDs, planIDs []uint) ([]model.Plan, error) {
	if len(trainerIDs) == 0 && len(planIDs) == 0 {
		return []model.Plan{}, nil
	}

	query := r.db.WithContext(ctx).Preload("Trainer").Order("created_at DESC, id ASC")
	switch {
	case len(trainerIDs) == 0:
		query = query.Where("id IN ?", planIDs)
	case len(planIDs) == 0:
		query = query.Where("trainer_id IN ?", trainerIDs)
	default:
		query = query.Where("trainer_id IN ? OR id IN ?", trainerIDs, planIDs)
	}

	var plans []model.Plan
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// DeleteWithSubscriptions removes a plan and every subscription referencing
// it in one transaction. Either both go or neither does.
func (r *planRepository) DeleteWithSubscriptions(ctx context.Context, plan *model.Plan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", plan.ID).Delete(&model.Subscription{}).Error; err != nil {
			return err
		}
		return tx.Delete(plan).Error
	})
}
