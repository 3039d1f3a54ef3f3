package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"sublimation-calc/internal/storage/migrations"
)

// Dialect maps a database driver name to its goose dialect.
func Dialect(driver string) string {
	if driver == "sqlite" {
		return "sqlite3"
	}
	return "postgres"
}

func setup(dialect string) error {
	goose.SetBaseFS(migrations.FS)
	return goose.SetDialect(dialect)
}

func RunMigrations(ctx context.Context, db *sql.DB, dialect string, logger *zap.Logger) error {
	const operation = "storage.RunMigrations"

	logger.Info("Running database migrations...", zap.String("dialect", dialect))

	if err := setup(dialect); err != nil {
		return fmt.Errorf("%s: failed to set dialect: %w", operation, err)
	}

	if err := goose.UpContext(ctx, db, migrations.Dir(dialect)); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", operation, err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

func RollbackMigration(ctx context.Context, db *sql.DB, dialect string, logger *zap.Logger) error {
	const operation = "storage.RollbackMigration"

	logger.Info("Rolling back last migration...")

	if err := setup(dialect); err != nil {
		return fmt.Errorf("%s: failed to set dialect: %w", operation, err)
	}

	if err := goose.DownContext(ctx, db, migrations.Dir(dialect)); err != nil {
		return fmt.Errorf("%s: failed to rollback migration: %w", operation, err)
	}

	logger.Info("Migration rollback completed")
	return nil
}

// Version reports the current schema version.
func Version(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	const operation = "storage.Version"

	if err := setup(dialect); err != nil {
		return 0, fmt.Errorf("%s: failed to set dialect: %w", operation, err)
	}

	v, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to read version: %w", operation, err)
	}
	return v, nil
}
