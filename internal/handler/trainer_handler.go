package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fitplanhub/internal/middleware"
	"fitplanhub/internal/service"
)

// TrainerHandler handles trainer-owned plan management and public trainer
// profiles.
type TrainerHandler struct {
	planService    service.PlanService
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new trainer handler.
func NewTrainerHandler(planService service.PlanService, trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{planService: planService, trainerService: trainerService}
}

// CreatePlanRequest represents a new plan.
type CreatePlanRequest struct {
	Title        string          `json:"title" validate:"required,max=200"`
	Description  string          `json:"description" validate:"required,max=2000"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days" validate:"required,gt=0"`
}

// UpdatePlanRequest represents a partial plan update; absent fields are left
// unchanged.
type UpdatePlanRequest struct {
	Title        *string          `json:"title" validate:"omitempty,max=200"`
	Description  *string          `json:"description" validate:"omitempty,max=2000"`
	Price        *decimal.Decimal `json:"price"`
	DurationDays *int             `json:"duration_days" validate:"omitempty,gt=0"`
}

// TrainerProfileResponse is a trainer's public profile.
type TrainerProfileResponse struct {
	ID             uint          `json:"id"`
	Name           string        `json:"name"`
	Plans          []PlanPreview `json:"plans"`
	FollowersCount int64         `json:"followers_count"`
	IsFollowing    bool          `json:"is_following"`
}

// CreatePlan godoc
// @Summary Create a plan owned by the calling trainer
// @Tags trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePlanRequest true "Plan fields"
// @Success 201 {object} PlanFull
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trainer/plans [post]
func (h *TrainerHandler) CreatePlan(c echo.Context) error {
	var req CreatePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trainer := middleware.ViewerFrom(c).User()
	plan, err := h.planService.Create(c.Request().Context(), trainer, service.CreatePlanInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		return serviceError(err)
	}

	plan.Trainer = *trainer
	return c.JSON(http.StatusCreated, planFull(plan, true))
}

// ListOwnPlans godoc
// @Summary List the calling trainer's plans with full detail
// @Tags trainer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PlanFull
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trainer/plans [get]
func (h *TrainerHandler) ListOwnPlans(c echo.Context) error {
	trainer := middleware.ViewerFrom(c).User()
	plans, err := h.planService.ListByOwner(c.Request().Context(), trainer)
	if err != nil {
		return serviceError(err)
	}

	result := make([]PlanFull, 0, len(plans))
	for i := range plans {
		plans[i].Trainer = *trainer
		result = append(result, planFull(&plans[i], true))
	}
	return c.JSON(http.StatusOK, result)
}

// UpdatePlan godoc
// @Summary Update a plan the calling trainer owns
// @Tags trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Param request body UpdatePlanRequest true "Fields to change"
// @Success 200 {object} PlanFull
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trainer/plans/{id} [put]
func (h *TrainerHandler) UpdatePlan(c echo.Context) error {
	planID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpdatePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trainer := middleware.ViewerFrom(c).User()
	plan, err := h.planService.Update(c.Request().Context(), trainer, planID, service.UpdatePlanInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		return serviceError(err)
	}

	plan.Trainer = *trainer
	return c.JSON(http.StatusOK, planFull(plan, true))
}

// DeletePlan godoc
// @Summary Delete a plan the calling trainer owns, cascading its subscriptions
// @Tags trainer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trainer/plans/{id} [delete]
func (h *TrainerHandler) DeletePlan(c echo.Context) error {
	planID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	trainer := middleware.ViewerFrom(c).User()
	if err := h.planService.Delete(c.Request().Context(), trainer, planID); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "plan deleted successfully"})
}

// GetProfile godoc
// @Summary Get a trainer's public profile
// @Tags trainers
// @Produce json
// @Param id path int true "Trainer ID"
// @Success 200 {object} TrainerProfileResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trainers/{id} [get]
func (h *TrainerHandler) GetProfile(c echo.Context) error {
	trainerID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	viewer := middleware.ViewerFrom(c)
	profile, err := h.trainerService.Profile(c.Request().Context(), viewer, trainerID)
	if err != nil {
		return serviceError(err)
	}

	previews := make([]PlanPreview, 0, len(profile.Plans))
	for i := range profile.Plans {
		profile.Plans[i].Trainer = *profile.Trainer
		previews = append(previews, planPreview(&profile.Plans[i]))
	}

	return c.JSON(http.StatusOK, TrainerProfileResponse{
		ID:             profile.Trainer.ID,
		Name:           profile.Trainer.Name,
		Plans:          previews,
		FollowersCount: profile.FollowersCount,
		IsFollowing:    profile.IsFollowing,
	})
}

// ListTrainers godoc
// @Summary List all trainers
// @Tags trainers
// @Produce json
// @Success 200 {array} TrainerSummary
// @Failure 500 {object} errors.ErrorResponse
// @Router /trainers [get]
func (h *TrainerHandler) ListTrainers(c echo.Context) error {
	trainers, err := h.trainerService.ListTrainers(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	summaries := make([]TrainerSummary, 0, len(trainers))
	for i := range trainers {
		summaries = append(summaries, trainerSummary(&trainers[i]))
	}
	return c.JSON(http.StatusOK, summaries)
}
