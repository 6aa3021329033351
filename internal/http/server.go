// Package http provides the HTTP servers of the employees service: the public
// API router and the Prometheus metrics endpoint.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/xenosis/employees/internal/auth/http"
	authUseCase "github.com/xenosis/employees/internal/auth/usecase"
	"github.com/xenosis/employees/internal/config"
	employeeHTTP "github.com/xenosis/employees/internal/employee/http"
	"github.com/xenosis/employees/internal/metrics"
)

const readinessTimeout = 2 * time.Second

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new API server. SetupRouter must be called before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// listen blocks until srv stops. A graceful shutdown is not an error.
func listen(srv *http.Server, logger *slog.Logger, name string) error {
	logger.Info("starting "+name, slog.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

// SetupRouter registers middleware and routes. Everything under /v1 requires
// HTTP Basic authentication, preceded by a per-IP limit so failed credential
// checks are throttled too; /health and /ready stay public.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	employeeHandler *employeeHTTP.EmployeeHandler,
	reportHandler *employeeHTTP.ReportHandler,
	authenticationUseCase authUseCase.AuthenticationUseCase,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
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
	if cfg.AuthRateLimitEnabled {
		v1.Use(authHTTP.IPRateLimitMiddleware(ctx, cfg.AuthRateLimitRequestsPerSec, cfg.AuthRateLimitBurst, s.logger))
	}
	v1.Use(authHTTP.AuthenticationMiddleware(authenticationUseCase, s.logger))
	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	employees := v1.Group("/employees")
	{
		employees.POST("", employeeHandler.CreateHandler)
		employees.GET("", employeeHandler.ListHandler)
		employees.GET("/:id", employeeHandler.GetHandler)
		employees.PUT("/:id", employeeHandler.UpdateHandler)
		employees.DELETE("/:id", employeeHandler.DeleteHandler)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/attendance", reportHandler.AttendanceHandler)
		reports.GET("/salary", reportHandler.SalaryHandler)
		reports.GET("/department", reportHandler.DepartmentHandler)
	}

	s.router = router
}

// GetHandler returns the configured router, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start serves requests until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	return listen(s.server, s.logger, "http server")
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only while the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		s.notReady(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		s.notReady(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

func (s *Server) notReady(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":     "not_ready",
		"components": gin.H{"database": "error"},
	})
}
