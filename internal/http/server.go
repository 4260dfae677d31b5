// Package http provides the HTTP servers, routing and shared middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/brdocs/internal/config"
	documentHTTP "github.com/allisson/brdocs/internal/document/http"
	"github.com/allisson/brdocs/internal/metrics"
	registrationHTTP "github.com/allisson/brdocs/internal/registration/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	ready  atomic.Bool
	// stopBackground ends goroutines owned by router middleware.
	stopBackground context.CancelFunc
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes.
// metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	documentHandler *documentHTTP.DocumentHandler,
	registrationHandler *registrationHTTP.RegistrationHandler,
	metricsProvider *metrics.Provider,
) {
	backgroundCtx, cancel := context.WithCancel(context.Background())
	s.stopBackground = cancel

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(backgroundCtx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	documents := v1.Group("/documents/:kind")
	{
		documents.POST("/validate", documentHandler.ValidateHandler)
		documents.POST("/mask", documentHandler.MaskHandler)
		documents.POST("/unmask", documentHandler.UnmaskHandler)
		documents.POST("/format", documentHandler.FormatHandler)
		documents.POST("/inspect", documentHandler.InspectHandler)
		documents.POST("/generate", documentHandler.GenerateHandler)
	}

	v1.POST("/emails/inspect", registrationHandler.InspectEmailHandler)
	v1.POST("/passwords/check", registrationHandler.CheckPasswordHandler)

	registrations := v1.Group("/registrations")
	{
		registrations.POST("", registrationHandler.ProcessHandler)
		registrations.POST("/check", registrationHandler.CheckHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it is shut down.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))
	s.ready.Store(true)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.ready.Store(false)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server as not ready and gracefully shuts it down.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.ready.Store(false)

	if s.stopBackground != nil {
		s.stopBackground()
	}

	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server is accepting traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"http": "stopped"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"http": "ok"},
	})
}
