package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitplanhub/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Plan{}, &model.Subscription{}, &model.Follow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedPlanWithSubscribers creates a trainer, one plan, and a subscription per
// given user id.
func seedPlanWithSubscribers(t *testing.T, db *gorm.DB, userIDs ...uint) *model.Plan {
	t.Helper()

	trainer := model.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: model.RoleTrainer}
	if err := db.Create(&trainer).Error; err != nil {
		t.Fatalf("seed trainer: %v", err)
	}

	plan := model.Plan{
		Title:        "12-Week Strength Builder",
		Description:  "Progressive barbell program.",
		Price:        decimal.NewFromInt(50),
		DurationDays: 84,
		TrainerID:    trainer.ID,
	}
	if err := db.Create(&plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	for _, id := range userIDs {
		if err := db.Create(&model.Subscription{UserID: id, PlanID: plan.ID}).Error; err != nil {
			t.Fatalf("seed subscription for user %d: %v", id, err)
		}
	}
	return &plan
}

func TestPlanRepository_DeleteWithSubscriptions(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlanRepository(db)

	plan := seedPlanWithSubscribers(t, db, 20, 21)
	other := seedPlanWithSubscribers(t, db, 22)

	assert.NoError(t, repo.DeleteWithSubscriptions(context.Background(), plan))

	var count int64
	db.Model(&model.Plan{}).Where("id = ?", plan.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&model.Subscription{}).Where("plan_id = ?", plan.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// The other plan and its subscriptions are untouched.
	db.Model(&model.Subscription{}).Where("plan_id = ?", other.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPlanRepository_DeleteWithSubscriptions_RollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlanRepository(db)

	plan := seedPlanWithSubscribers(t, db, 20, 21)

	// Make the plan delete fail after the subscription delete already ran,
	// so the test observes whether the cascade is atomic.
	planDeleteErr := errors.New("plan delete rejected")
	err := db.Callback().Delete().Before("gorm:delete").Register("fail_plan_delete", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*model.Plan); ok {
			_ = tx.AddError(planDeleteErr)
		}
	})
	assert.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Callback().Delete().Remove("fail_plan_delete")
	})

	err = repo.DeleteWithSubscriptions(context.Background(), plan)
	assert.ErrorIs(t, err, planDeleteErr)

	// Nothing was deleted: the subscription removal rolled back with the
	// failed plan delete.
	var count int64
	db.Model(&model.Plan{}).Where("id = ?", plan.ID).Count(&count)
	assert.Equal(t, int64(1), count)
	db.Model(&model.Subscription{}).Where("plan_id = ?", plan.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}
