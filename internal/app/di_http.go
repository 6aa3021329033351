package app

import (
	"context"
	"fmt"

	"github.com/xenosis/employees/internal/http"
)

// HTTPServer returns the API server with its router configured. ctx bounds
// background work started by middleware, such as rate limiter cleanup.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	err := c.lazy(&c.httpServerInit, "httpServer", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for http server: %w", err)
		}
		employeeHandler, err := c.EmployeeHandler()
		if err != nil {
			return fmt.Errorf("failed to get employee handler for http server: %w", err)
		}
		reportHandler, err := c.ReportHandler()
		if err != nil {
			return fmt.Errorf("failed to get report handler for http server: %w", err)
		}
		authenticationUseCase, err := c.AuthenticationUseCase()
		if err != nil {
			return fmt.Errorf("failed to get authentication use case for http server: %w", err)
		}
		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}

		server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
		server.SetupRouter(ctx, c.config, employeeHandler, reportHandler, authenticationUseCase, metricsProvider)

		c.mu.Lock()
		c.httpServer = server
		c.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus scrape server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.lazy(&c.metricsServerInit, "metricsServer", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
		}
		if provider == nil {
			return nil
		}

		server := http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)

		c.mu.Lock()
		c.metricsServer = server
		c.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}
