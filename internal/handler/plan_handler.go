package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fitplanhub/internal/middleware"
	"fitplanhub/internal/service"
)

// PlanHandler handles public plan browsing and subscribing.
type PlanHandler struct {
	planService service.PlanService
	subService  service.SubscriptionService
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(planService service.PlanService, subService service.SubscriptionService) *PlanHandler {
	return &PlanHandler{planService: planService, subService: subService}
}

// ListPlans godoc
// @Summary List all plans as previews
// @Tags plans
// @Produce json
// @Success 200 {array} PlanPreview
// @Failure 500 {object} errors.ErrorResponse
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c echo.Context) error {
	plans, err := h.planService.ListPublic(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	previews := make([]PlanPreview, 0, len(plans))
	for i := range plans {
		previews = append(previews, planPreview(&plans[i]))
	}
	return c.JSON(http.StatusOK, previews)
}

// GetPlan godoc
// @Summary Get a plan; full detail for owners and subscribers, preview otherwise
// @Tags plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} PlanFull
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c echo.Context) error {
	planID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	viewer := middleware.ViewerFrom(c)
	plan, entitled, err := h.planService.GetForViewer(c.Request().Context(), viewer, planID)
	if err != nil {
		return serviceError(err)
	}

	if entitled {
		return c.JSON(http.StatusOK, planFull(plan, true))
	}
	return c.JSON(http.StatusOK, struct {
		PlanPreview
		IsSubscribed bool `json:"is_subscribed"`
	}{planPreview(plan), false})
}

// Subscribe godoc
// @Summary Subscribe to a plan
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 201 {object} model.Subscription
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /plans/{id}/subscribe [post]
func (h *PlanHandler) Subscribe(c echo.Context) error {
	planID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	viewer := middleware.ViewerFrom(c)
	sub, err := h.subService.Subscribe(c.Request().Context(), viewer.User(), planID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}

func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
