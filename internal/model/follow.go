package model

import "time"

// Follow records a user following a trainer. The composite unique index
// rules out duplicate follows under concurrent requests.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_follows_user_trainer,unique"`
	TrainerID uint      `json:"trainer_id" gorm:"not null;index:idx_follows_user_trainer,unique;index"`
	CreatedAt time.Time `json:"created_at"`

	User    User `json:"-" gorm:"foreignKey:UserID"`
	Trainer User `json:"-" gorm:"foreignKey:TrainerID"`
}
