package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donation-dashboard-service/internal/config"
	"donation-dashboard-service/internal/handler"
	"donation-dashboard-service/internal/storage"
	"donation-dashboard-service/internal/store"
	"donation-dashboard-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Logger
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	// Storage backend
	var backend storage.Backend
	switch cfg.StorageDriver {
	case "postgres":
		pg, err := storage.NewPostgres(cfg)
		if err != nil {
			logger.Fatalf("Database connection failed: %v", err)
		}
		defer pg.Close()
		backend = pg
		logger.Info("Using postgres storage")
	case "memory":
		backend = storage.NewMemory()
		logger.Info("Using in-memory storage")
	default:
		fileBackend, err := storage.NewFile(cfg.DataDir)
		if err != nil {
			logger.Fatalf("Data dir setup failed: %v", err)
		}
		backend = fileBackend
		logger.Infof("Using file storage at %s", cfg.DataDir)
	}

	// Persistent store, seeded on first run
	st := store.New(backend)
	if err := st.Initialize(context.Background()); err != nil {
		logger.Fatalf("Store initialization failed: %v", err)
	}
	logger.Info("Store initialized")

	// Use Cases
	verifier := usecase.NewVerifier(cfg.AuthScheme)
	activityUC := usecase.NewActivityUseCase(st)
	statsUC := usecase.NewStatsUseCase(st)
	authUC := usecase.NewAuthUseCase(st, verifier)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.RequestIDMiddleware())
	e.Use(handler.LoggingMiddleware(logger))

	apiHandler := handler.NewAPIHandler(authUC, activityUC, statsUC, st, logger)
	apiHandler.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Start server
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
