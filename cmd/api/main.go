package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lezzetly/lezzetly-backend/config"
	"github.com/lezzetly/lezzetly-backend/internal/database"
	"github.com/lezzetly/lezzetly-backend/internal/server"
	"github.com/lezzetly/lezzetly-backend/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	// Image storage is optional; without S3 credentials submissions simply
	// skip image persistence.
	var images service.ImageStore
	if s3Cfg, err := config.NewS3Config(context.Background()); err != nil {
		logger.Warn("S3 storage unavailable, submission images will be skipped", zap.Error(err))
	} else {
		if err := s3Cfg.SetupBucketPolicy(context.Background()); err != nil {
			logger.Warn("failed to apply public-read bucket policy", zap.Error(err))
		}
		images = service.NewImageService(s3Cfg, logger)
	}

	// Create the server
	srv, err := server.NewServer(db, redisClient, cfg, images, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.ServerPort)
	}()

	// Block until we receive a signal or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	// Gracefully shutdown the server
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
