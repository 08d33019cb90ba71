package main

import (
	"log"
	"net/http"

	_ "fitbook/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"fitbook/internal/auth"
	"fitbook/internal/cache"
	"fitbook/internal/config"
	"fitbook/internal/db"
	"fitbook/internal/handler"
	"fitbook/internal/metrics"
	"fitbook/internal/model"
	"fitbook/internal/repository"
	"fitbook/internal/router"
	"fitbook/internal/service"
)

// @title Fitbook API
// @version 1.0
// @description Gym class booking API with JWT authentication and role-based access control.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Class{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	classRepo := repository.NewClassRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewAuthenticator(jwtService, userRepo)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, collector)
	userService := service.NewUserService(userRepo)
	classService := service.NewClassService(classRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo, collector)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	classHandler := handler.NewClassHandler(classService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	gymHandler := handler.NewGymHandler()

	router.Register(
		e,
		cfg,
		authenticator,
		collector,
		authHandler,
		userHandler,
		classHandler,
		bookingHandler,
		gymHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
