// Package main provides the entry point for the employees service CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/xenosis/employees/cmd/app/commands"
	"github.com/xenosis/employees/internal/app"
	"github.com/xenosis/employees/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "app",
		Usage:    "Employee management service",
		Version:  version,
		Commands: append(systemCommands(), employeeCommands()...),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

func systemCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Apply pending database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				logger := app.NewContainer(cfg).Logger()
				return commands.RunMigrations(logger, cfg.DBDriver, cfg.DBConnectionString)
			},
		},
	}
}
