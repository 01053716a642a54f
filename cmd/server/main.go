package main

import (
	"log"
	"net/http"
	"os"

	_ "fitplanhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"fitplanhub/internal/auth"
	"fitplanhub/internal/cache"
	"fitplanhub/internal/config"
	"fitplanhub/internal/db"
	"fitplanhub/internal/handler"
	"fitplanhub/internal/model"
	"fitplanhub/internal/repository"
	"fitplanhub/internal/router"
	"fitplanhub/internal/service"
)

// @title FitPlanHub API
// @version 1.0
// @description Marketplace API where trainers publish paid fitness plans and users browse, subscribe, and follow trainers.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Follow{},
			&model.Subscription{},
			&model.Plan{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Plan{},
		&model.Subscription{},
		&model.Follow{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)
	subRepo := repository.NewSubscriptionRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cacheClient)
	planService := service.NewPlanService(planRepo, subRepo)
	subService := service.NewSubscriptionService(planRepo, subRepo)
	followService := service.NewFollowService(userRepo, followRepo, cacheClient)
	trainerService := service.NewTrainerService(userRepo, planRepo, followRepo, cacheClient)
	feedService := service.NewFeedService(planRepo, subRepo, followRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	planHandler := handler.NewPlanHandler(planService, subService)
	trainerHandler := handler.NewTrainerHandler(planService, trainerService)
	socialHandler := handler.NewSocialHandler(followService, feedService)

	// Register routes
	router.Register(
		e,
		cfg,
		userRepo,
		authHandler,
		planHandler,
		trainerHandler,
		socialHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
