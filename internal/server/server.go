package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/approx/internal/api/middleware"
	"github.com/GriffinCanCode/approx/internal/config"
	handlers "github.com/GriffinCanCode/approx/internal/http"
	"github.com/GriffinCanCode/approx/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/approx/internal/logging"
	"github.com/GriffinCanCode/approx/internal/providers/approx"
	"github.com/GriffinCanCode/approx/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger, version string) (*Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger.Info("Initializing approx tool server",
		zap.String("addr", cfg.Server.Addr()),
		zap.Int("terms", cfg.Series.Terms),
		zap.String("log_method", cfg.Series.LogMethod),
	)

	metrics := monitoring.NewMetrics()
	serviceRegistry := service.NewRegistry(logger, metrics)

	settings, err := approx.SettingsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric settings: %w", err)
	}
	provider, err := approx.NewProvider(settings)
	if err != nil {
		return nil, err
	}
	if err := serviceRegistry.Register(provider); err != nil {
		return nil, fmt.Errorf("failed to register approx provider: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}

	h := handlers.NewHandlers(serviceRegistry, logger, version)

	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	router.GET("/services", h.ListServices)
	router.POST("/services/execute", h.ExecuteService)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	stats := serviceRegistry.Stats()
	logger.Info("Server initialized successfully",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)

	return &Server{
		router:   router,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the tool registry the server dispatches to.
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Server.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return <-errCh
}

// Close flushes the logger.
func (s *Server) Close() error {
	_ = s.logger.Sync()
	return nil
}
