package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fitplanhub/internal/config"
	"fitplanhub/internal/handler"
	"fitplanhub/internal/middleware"
	"fitplanhub/internal/repository"
)

// Register wires routes and middleware. Routes fall into three auth classes:
// anonymous-ok, optional-token (viewer may be anonymous), and required-token,
// with a trainer-only subgroup for plan management.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	planHandler *handler.PlanHandler,
	trainerHandler *handler.TrainerHandler,
	socialHandler *handler.SocialHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/plans", planHandler.ListPlans)
	api.GET("/trainers", trainerHandler.ListTrainers)

	// Optional-auth routes: an invalid token browses as anonymous
	optional := api.Group("",
		middleware.OptionalToken(cfg.JWTSecret),
		middleware.LoadViewer(userRepo, false),
	)
	optional.GET("/plans/:id", planHandler.GetPlan)
	optional.GET("/trainers/:id", trainerHandler.GetProfile)

	// Secured routes (require a valid bearer token)
	secured := api.Group("",
		middleware.RequireToken(cfg.JWTSecret),
		middleware.LoadViewer(userRepo, true),
	)
	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/plans/:id/subscribe", planHandler.Subscribe)
	secured.POST("/trainers/:id/follow", socialHandler.Follow)
	secured.DELETE("/trainers/:id/unfollow", socialHandler.Unfollow)
	secured.GET("/users/me/following", socialHandler.Following)
	secured.GET("/users/me/feed", socialHandler.Feed)

	// Trainer-only plan management
	trainer := secured.Group("/trainer", middleware.RequireTrainer())
	trainer.POST("/plans", trainerHandler.CreatePlan)
	trainer.GET("/plans", trainerHandler.ListOwnPlans)
	trainer.PUT("/plans/:id", trainerHandler.UpdatePlan)
	trainer.DELETE("/plans/:id", trainerHandler.DeletePlan)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
