package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/xenosis/employees/internal/database"
)

// migrationSource returns the migrations directory for driver.
func migrationSource(driver string) string {
	if driver == database.DriverMySQL {
		return "file://migrations/mysql"
	}
	return "file://migrations/postgresql"
}

// migrationDatabaseURL converts the application DSN into the URL form
// golang-migrate expects. MySQL DSNs are go-sql-driver style: they need the
// scheme prepended and multiStatements enabled, since one migration file
// creates several tables.
func migrationDatabaseURL(driver, dsn string) string {
	if driver != database.DriverMySQL {
		return dsn
	}
	if !strings.HasPrefix(dsn, "mysql://") {
		dsn = "mysql://" + dsn
	}
	if !strings.Contains(dsn, "multiStatements=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "multiStatements=true"
	}
	return dsn
}

// RunMigrations applies every pending migration for the configured driver.
// It succeeds when there is nothing to apply.
func RunMigrations(logger *slog.Logger, dbDriver, dbConnectionString string) error {
	logger.Info("running database migrations",
		slog.String("driver", dbDriver),
	)

	m, err := migrate.New(migrationSource(dbDriver), migrationDatabaseURL(dbDriver, dbConnectionString))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil || dbErr != nil {
			logger.Error("failed to close migrate",
				slog.Any("source_error", sourceErr),
				slog.Any("database_error", dbErr),
			)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
