package model

import "time"

// Subscription links a user to a plan they purchased. The composite unique
// index enforces at most one subscription per (user, plan) pair in the
// database, not just in application code.
type Subscription struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index:idx_subscriptions_user_plan,unique"`
	PlanID       uint      `json:"plan_id" gorm:"not null;index:idx_subscriptions_user_plan,unique;index"`
	SubscribedAt time.Time `json:"subscribed_at" gorm:"autoCreateTime"`

	User User `json:"-" gorm:"foreignKey:UserID"`
	Plan Plan `json:"-" gorm:"foreignKey:PlanID"`
}
