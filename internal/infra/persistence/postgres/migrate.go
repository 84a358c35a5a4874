package postgres

import (
	"database/sql"
	"log/slog"

	"taskboard/config"
	"taskboard/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file:// migration source
)

const defaultMigrationsPath = "migrations"

// runMigrations applies pending schema migrations from the configured
// directory. It reuses the service's own connection, so no separate DSN is
// needed. A no-op when migrations are disabled or not configured.
func runMigrations(cfg *config.Config, logger *slog.Logger, sqlDB *sql.DB) error {
	if cfg.Migrations == nil || !cfg.Migrations.Enabled {
		return nil
	}

	path := cfg.Migrations.Path
	if path == "" {
		path = defaultMigrationsPath
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("Schema is up to date")

			return nil
		}

		return errors.Wrap(err, "failed to apply migrations")
	}

	logger.Info("Schema migrations applied", slog.String("path", path))

	return nil
}
