package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// ErrDirtySchema is returned when a previous migration failed halfway.
var ErrDirtySchema = errors.New("database: schema is dirty, fix it manually with migrate force")

// RunMigrations brings the user_locales schema up to date from migrationsPath.
func RunMigrations(dsn, migrationsPath string, logger *slog.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("database: migration init: %w", err)
	}
	defer m.Close()

	if _, dirty, err := m.Version(); err == nil && dirty {
		return ErrDirtySchema
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Debug("migrations: schema up to date")
	case err != nil:
		return fmt.Errorf("database: migration up: %w", err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("database: migration version: %w", err)
	}
	logger.Info("✅ Migrações aplicadas", slog.Uint64("version", uint64(version)))
	return nil
}
