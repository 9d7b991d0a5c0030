package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/assethub-tools/nft-migrator/internal/api/middleware"
	"github.com/assethub-tools/nft-migrator/internal/api/rest"
	"github.com/assethub-tools/nft-migrator/internal/collections"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/mapper"
	"github.com/assethub-tools/nft-migrator/internal/migration"
	"github.com/assethub-tools/nft-migrator/internal/reconciler"
	"github.com/assethub-tools/nft-migrator/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config       Config
	reader       collections.Reader
	mapper       mapper.Mapper
	reconciler   reconciler.Reconciler
	orchestrator migration.Orchestrator
	store        store.Store
	httpServer   *http.Server
}

// New creates a new API server
func New(
	cfg Config,
	reader collections.Reader,
	mapper mapper.Mapper,
	rec reconciler.Reconciler,
	orchestrator migration.Orchestrator,
	st store.Store,
) *Server {
	return &Server{
		config:       cfg,
		reader:       reader,
		mapper:       mapper,
		reconciler:   rec,
		orchestrator: orchestrator,
		store:        st,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create REST handler and routes
	handler := rest.NewHandler(s.reader, s.mapper, s.reconciler, s.orchestrator, s.store)
	rest.SetupRoutes(router, handler, s.config.Auth)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
