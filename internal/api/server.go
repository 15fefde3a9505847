package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhima/attendance-ledger/internal/api/handlers"
	"github.com/dhima/attendance-ledger/internal/api/middleware"
	"github.com/dhima/attendance-ledger/internal/checkin"
	"github.com/dhima/attendance-ledger/internal/ledger"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/sessions"
	"github.com/dhima/attendance-ledger/internal/stats"
	"github.com/dhima/attendance-ledger/internal/storage"
	"github.com/dhima/attendance-ledger/pkg/config"
	platformEvents "github.com/dhima/attendance-ledger/platform/events"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server orchestrates HTTP routing and dependencies for the API service.
type Server struct {
	config    config.App
	logger    logging.Logger
	router    *gin.Engine
	backend   storage.Backend
	publisher platformEvents.Sink

	registry *sessions.Registry
	recorder *checkin.Service
	engine   *stats.Engine
}

// NewServer loads configuration from the environment, connects the ledger
// backend and wires the API dependencies together.
func NewServer(ctx context.Context) (*Server, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("ledger backend connected", zap.String("backend", cfg.LedgerBackend))

	publisher := platformEvents.NewSink(cfg.Brokers(), cfg.KafkaTopic, logger.Zap())

	server, err := New(cfg, logger, backend, publisher)
	if err != nil {
		_ = publisher.Close()
		_ = backend.Close()
		return nil, err
	}
	return server, nil
}

// New builds a server over an already opened backend and publisher. The
// server takes ownership of both and closes them on shutdown.
func New(cfg config.App, logger logging.Logger, backend storage.Backend, publisher platformEvents.Sink) (*Server, error) {
	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	adapter := ledger.NewAdapter(backend, logger)
	registry := sessions.NewRegistry()

	server := &Server{
		config:    cfg,
		logger:    logger,
		backend:   backend,
		publisher: publisher,
		registry:  registry,
		recorder:  checkin.NewService(adapter, registry, publisher, logger),
		engine:    stats.NewEngine(adapter, logger),
	}

	if err := server.setupRouter(); err != nil {
		return nil, err
	}
	return server, nil
}

// Handler exposes the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRouter configures the Gin router with middleware and routes.
func (s *Server) setupRouter() error {
	router := gin.New()
	zapLogger := s.logger.Zap()

	// Global middleware (order matters!)
	// 1. Recovery - must be first to catch panics from other middleware
	router.Use(ginzap.RecoveryWithZap(zapLogger, true))

	// 2. Request ID - inject unique ID for tracing
	router.Use(middleware.RequestID())

	// 3. Logging - log all requests with structured fields
	router.Use(ginzap.Ginzap(zapLogger, time.RFC3339, true))

	// 4. CORS - handle cross-origin requests
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: !allowsAnyOrigin(s.config.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Health and metrics endpoints (no /api/v1 prefix)
	router.GET("/health", handlers.NewHealthHandler(s.logger, s.config.LedgerBackend).Health)
	router.GET("/metrics", handlers.NewMetricsHandler(s.engine, s.registry, s.logger).Metrics)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	checkInHandler, err := handlers.NewCheckInHandler(s.recorder, s.logger)
	if err != nil {
		return err
	}
	sessionHandler := handlers.NewSessionHandler(s.registry, s.logger)
	statsHandler := handlers.NewStatsHandler(s.engine, s.logger)
	adminOnly := middleware.AdminOnly([]byte(s.config.JWTSecret))

	v1 := router.Group("/api/v1")
	{
		// Session management
		sessionRoutes := v1.Group("/sessions")
		{
			sessionRoutes.GET("", adminOnly, sessionHandler.List)
			sessionRoutes.GET("/:scope", sessionHandler.Status)
			sessionRoutes.POST("/:scope/activate", adminOnly, sessionHandler.Activate)
			sessionRoutes.POST("/:scope/deactivate", adminOnly, sessionHandler.Deactivate)
		}

		v1.POST("/checkins", checkInHandler.CheckIn)

		// Attendance queries
		members := v1.Group("/members/:member")
		{
			members.GET("/percentage", statsHandler.Percentage)
			members.GET("/stats", statsHandler.MemberStats)
		}
		v1.GET("/leaderboard", statsHandler.Leaderboard)
	}

	s.router = router
	return nil
}

// Serve starts the HTTP server with graceful shutdown support.
func (s *Server) Serve() error {
	addr := ":" + s.config.APIPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server",
			zap.String("address", addr),
			zap.String("environment", s.config.Environment),
			zap.String("ledger_backend", s.config.LedgerBackend),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-quit:
		s.logger.Info("shutting down server gracefully...")
	case err := <-serveErr:
		s.Close()
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	// Graceful shutdown with 30 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	s.Close()

	// Flush logger before exit
	if err := s.logger.Sync(); err != nil {
		// Ignore sync errors on stdout/stderr
		if err.Error() != "sync /dev/stdout: invalid argument" &&
			err.Error() != "sync /dev/stderr: invalid argument" {
			return err
		}
	}

	s.logger.Info("server stopped")
	return nil
}

// Close releases the publisher and the ledger backend.
func (s *Server) Close() {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.logger.Error("failed to close event publisher", zap.Error(err))
		}
	}
	if s.backend != nil {
		if err := s.backend.Close(); err != nil {
			s.logger.Error("failed to close ledger backend", zap.Error(err))
		}
	}
}

// allowsAnyOrigin reports whether origins contains the wildcard. Credentials
// are only allowed for explicit origins.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
