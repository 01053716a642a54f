package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fitplanhub/internal/middleware"
	"fitplanhub/internal/service"
)

// SocialHandler handles follow relationships and the personalized feed.
type SocialHandler struct {
	followService service.FollowService
	feedService   service.FeedService
}

// NewSocialHandler creates a new social handler.
func NewSocialHandler(followService service.FollowService, feedService service.FeedService) *SocialHandler {
	return &SocialHandler{followService: followService, feedService: feedService}
}

// FollowResponse is one entry of a user's following list.
type FollowResponse struct {
	ID      uint           `json:"id"`
	Trainer TrainerSummary `json:"trainer"`
}

// Follow godoc
// @Summary Follow a trainer
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /trainers/{id}/follow [post]
func (h *SocialHandler) Follow(c echo.Context) error {
	trainerID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	viewer := middleware.ViewerFrom(c)
	if err := h.followService.Follow(c.Request().Context(), viewer.User(), trainerID); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "successfully followed trainer"})
}

// Unfollow godoc
// @Summary Unfollow a trainer
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trainers/{id}/unfollow [delete]
func (h *SocialHandler) Unfollow(c echo.Context) error {
	trainerID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	viewer := middleware.ViewerFrom(c)
	if err := h.followService.Unfollow(c.Request().Context(), viewer.User(), trainerID); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "successfully unfollowed trainer"})
}

// Following godoc
// @Summary List the trainers the caller follows
// @Tags social
// @Produce json
// @Security BearerAuth
// @Success 200 {array} FollowResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/me/following [get]
func (h *SocialHandler) Following(c echo.Context) error {
	viewer := middleware.ViewerFrom(c)
	follows, err := h.followService.ListFollowing(c.Request().Context(), viewer.User())
	if err != nil {
		return serviceError(err)
	}

	result := make([]FollowResponse, 0, len(follows))
	for i := range follows {
		result = append(result, FollowResponse{
			ID:      follows[i].ID,
			Trainer: trainerSummary(&follows[i].Trainer),
		})
	}
	return c.JSON(http.StatusOK, result)
}

// Feed godoc
// @Summary Get the caller's personalized feed
// @Tags social
// @Produce json
// @Security BearerAuth
// @Success 200 {array} FeedItemResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/me/feed [get]
func (h *SocialHandler) Feed(c echo.Context) error {
	viewer := middleware.ViewerFrom(c)
	items, err := h.feedService.Feed(c.Request().Context(), viewer.User())
	if err != nil {
		return serviceError(err)
	}

	result := make([]FeedItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, feedItem(item))
	}
	return c.JSON(http.StatusOK, result)
}
