package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is a paid fitness plan authored by a trainer. The description is the
// monetized content and is only shown to entitled viewers.
type Plan struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Title        string          `json:"title" gorm:"size:200;not null"`
	Description  string          `json:"description" gorm:"size:2000;not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	DurationDays int             `json:"duration_days" gorm:"not null"`
	TrainerID    uint            `json:"trainer_id" gorm:"not null;index"`
	CreatedAt    time.Time       `json:"created_at"`

	Trainer User `json:"-" gorm:"foreignKey:TrainerID"`
}
