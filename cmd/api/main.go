package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpalmer/promoboost/internal/api"
	"github.com/jpalmer/promoboost/internal/config"
	"github.com/jpalmer/promoboost/internal/llm"
	"github.com/jpalmer/promoboost/internal/logger"
	"github.com/jpalmer/promoboost/internal/repository"
	"github.com/jpalmer/promoboost/internal/service"
)

func main() {
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewDefault()
	defer logger.Sync()
	logger.SetDefaultLogger(appLogger)

	if cfg.Auth.JWTSecret == "" {
		appLogger.Fatal("JWT_SECRET must be set")
	}

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	contentRepo := repository.NewContentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)

	// LLM provider with settings-backed runtime configuration
	settingsCache := llm.NewSettingsCache(settingsRepo, cfg.Ollama)
	llmClient := llm.NewClient(settingsCache, cfg.Ollama.Timeout)

	// Services
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	trackingService := service.NewTrackingService(trackingRepo, cfg.Tracking.BaseURL)
	fetcherService := service.NewFetcherService(cfg.Fetch)
	generator := service.NewGenerator(llmClient, postRepo, contentRepo, trackingService)

	ctx := context.Background()
	if cfg.Auth.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			appLogger.WithError(err).Fatal("Failed to bootstrap admin user")
		}
	}

	router := api.SetupRouter(api.Deps{
		Config:        cfg,
		AuthService:   authService,
		Generator:     generator,
		Tracking:      trackingService,
		Fetcher:       fetcherService,
		SettingsCache: settingsCache,
		Posts:         postRepo,
		Profiles:      profileRepo,
		Contents:      contentRepo,
		Settings:      settingsRepo,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
