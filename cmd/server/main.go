package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	_ "fitstack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fitstack/internal/auth"
	"fitstack/internal/cache"
	"fitstack/internal/config"
	"fitstack/internal/db"
	"fitstack/internal/handler"
	"fitstack/internal/model"
	"fitstack/internal/repository"
	"fitstack/internal/router"
	"fitstack/internal/service"
)

// @title FitStack API
// @version 1.0
// @description Health and fitness platform API with BMI tracking, expert applications, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Token{},
			&model.BMIRecord{},
			&model.ExpertProfile{},
			&model.Application{},
			&model.MedicalCondition{},
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
		&model.MedicalCondition{},
		&model.BMIRecord{},
		&model.Application{},
		&model.ExpertProfile{},
		&model.Token{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	bmiRepo := repository.NewBMIRepository(gormDB)
	conditionRepo := repository.NewMedicalConditionRepository(gormDB)

	// Expired refresh and reset rows are dead weight once their JWT expiry has
	// passed; sweep them hourly.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := tokenRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("token sweep: %v", err)
			}
		}
	}()

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenRepo, jwtService, cacheClient, cfg)
	userService := service.NewUserService(userRepo, cacheClient)
	bmiService := service.NewBMIService(bmiRepo, userRepo)
	applicationService := service.NewApplicationService(applicationRepo, cacheClient)
	conditionService := service.NewConditionService(conditionRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bmiHandler := handler.NewBMIHandler(bmiService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	conditionHandler := handler.NewConditionHandler(conditionService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		userHandler,
		bmiHandler,
		applicationHandler,
		conditionHandler,
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
