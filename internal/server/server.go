package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lezzetly/lezzetly-backend/config"
	"github.com/lezzetly/lezzetly-backend/internal/api"
	"github.com/lezzetly/lezzetly-backend/internal/middleware"
	"github.com/lezzetly/lezzetly-backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// NewServer creates a new server instance
func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, images service.ImageStore, logger *zap.Logger) (*Server, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler(logger))

	if err := api.SetupAPI(router, db, redisClient, cfg, images, logger); err != nil {
		return nil, err
	}

	return &Server{
		router: router,
		logger: logger,
	}, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting server", zap.String("port", port))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}

// Router exposes the underlying router for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
