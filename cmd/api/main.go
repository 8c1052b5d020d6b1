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

	"github.com/krishnaa-0506/always/internal/api"
	"github.com/krishnaa-0506/always/internal/api/middleware"
	"github.com/krishnaa-0506/always/internal/config"
	"github.com/krishnaa-0506/always/internal/content"
	"github.com/krishnaa-0506/always/internal/logger"
	"github.com/krishnaa-0506/always/internal/repository"
	"github.com/krishnaa-0506/always/internal/service"
	"github.com/krishnaa-0506/always/internal/storage"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// Initialize repositories
	messageRepo := repository.NewMessageRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize storage (supports MinIO, R2, S3)
	objectStorage, err := storage.NewStorage(&storage.S3Config{
		Type:      storage.StorageType(cfg.Storage.Type),
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage: %v", err)
	}

	// Ensure bucket exists
	ctx := context.Background()
	if err := objectStorage.EnsureBucket(ctx); err != nil {
		logger.Fatal("Failed to ensure storage bucket: %v", err)
	}

	// Initialize the content pipeline
	library := content.NewLibrary(content.NewFSSource(cfg.Content.Dir))
	resolver := content.NewResolver(library)
	selector := content.NewSelector(nil)

	tracker := service.NewUniquenessTracker(sessionRepo)
	codeIssuer := service.NewCodeIssuer(messageRepo, nil, cfg.Generation.CodeMaxAttempts)
	notifier := service.NewNotifyService(&service.NotifyConfig{
		Enabled:    cfg.Notify.Enabled,
		WebhookURL: cfg.Notify.WebhookURL,
		Timeout:    time.Duration(cfg.Notify.TimeoutSec) * time.Second,
	})

	generationService := service.NewGenerationService(
		messageRepo,
		photoRepo,
		resolver,
		selector,
		tracker,
		codeIssuer,
		notifier,
		appLogger,
	)
	photoService := service.NewPhotoService(messageRepo, photoRepo, objectStorage)

	// Setup router
	router := api.SetupRouter(
		generationService,
		photoService,
		cfg.Server.Mode,
		middleware.CORSConfig{
			AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
			AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
		},
		appLogger,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting API server: port=%d, mode=%s", cfg.Server.Port, cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
