package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eos420/indexer-api/internal/api/middleware"
	"github.com/eos420/indexer-api/internal/api/rest"
	"github.com/eos420/indexer-api/internal/logger"
	"github.com/eos420/indexer-api/internal/manager"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// WorkerPoolSize bounds how many rows listings render at once
	WorkerPoolSize int
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	managers   *manager.Managers
	pool       pond.Pool
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, managers *manager.Managers) *Server {
	return &Server{
		config:   cfg,
		managers: managers,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if s.pool == nil {
		size := s.config.WorkerPoolSize
		if size <= 0 {
			size = 1
		}
		s.pool = pond.NewPool(size)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID(s.managers.IDs))
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Setup REST routes
	rest.SetupRoutes(router, rest.NewHandler(s.managers, s.pool))

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server, then drains the render pool
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	if s.pool != nil {
		s.pool.StopAndWait()
	}

	return nil
}
