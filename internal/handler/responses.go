package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fitplanhub/internal/errors"
	"fitplanhub/internal/model"
	"fitplanhub/internal/service"
)

// TrainerSummary is the public trainer reference embedded in plan responses.
type TrainerSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PlanPreview is the reduced projection shown to non-entitled viewers. The
// description is withheld; it is the paid content.
type PlanPreview struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
	Trainer      TrainerSummary  `json:"trainer"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PlanFull is the projection shown to owners and subscribers.
type PlanFull struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
	Trainer      TrainerSummary  `json:"trainer"`
	CreatedAt    time.Time       `json:"created_at"`
	IsSubscribed bool            `json:"is_subscribed"`
}

// FeedItemResponse is one entry of the personalized feed.
type FeedItemResponse struct {
	Plan        PlanPreview    `json:"plan"`
	IsPurchased bool           `json:"is_purchased"`
	Trainer     TrainerSummary `json:"trainer"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

func trainerSummary(t *model.User) TrainerSummary {
	return TrainerSummary{ID: t.ID, Name: t.Name}
}

func planPreview(p *model.Plan) PlanPreview {
	return PlanPreview{
		ID:           p.ID,
		Title:        p.Title,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		Trainer:      trainerSummary(&p.Trainer),
		CreatedAt:    p.CreatedAt,
	}
}

func planFull(p *model.Plan, subscribed bool) PlanFull {
	return PlanFull{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		Trainer:      trainerSummary(&p.Trainer),
		CreatedAt:    p.CreatedAt,
		IsSubscribed: subscribed,
	}
}

func feedItem(item service.FeedItem) FeedItemResponse {
	return FeedItemResponse{
		Plan:        planPreview(&item.Plan),
		IsPurchased: item.IsPurchased,
		Trainer:     trainerSummary(&item.Plan.Trainer),
	}
}

// serviceError maps a domain error to its HTTP outcome.
func serviceError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
