// Package commands implements the actions behind the CLI subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/xenosis/employees/internal/app"
	"github.com/xenosis/employees/internal/config"
)

// Starter is a server that blocks serving until Shutdown is called.
type Starter interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunServer starts the API server and, when enabled, the metrics server. It
// blocks until SIGINT/SIGTERM or until a server fails, then shuts both down
// within SHUTDOWN_TIMEOUT_SECONDS.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer func() {
		if err := container.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown container", slog.Any("error", err))
		}
	}()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server, err := container.HTTPServer(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	servers := map[string]Starter{"api": server}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers["metrics"] = metricsServer
	}

	return serve(ctx, logger, cfg, servers)
}

// serve runs every server until ctx is cancelled or one of them fails, then
// shuts all of them down.
func serve(ctx context.Context, logger *slog.Logger, cfg *config.Config, servers map[string]Starter) error {
	g, gctx := errgroup.WithContext(ctx)

	for name, srv := range servers {
		g.Go(func() error {
			if err := srv.Start(gctx); err != nil {
				return fmt.Errorf("%s server error: %w", name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown signal received")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var shutdownErrors []error
		for name, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("%s server shutdown: %w", name, err))
			}
		}
		return errors.Join(shutdownErrors...)
	})

	return g.Wait()
}
