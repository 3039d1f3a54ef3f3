package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"sublimation-calc/internal/config"
)

// Storage keeps saved input profiles in SQL with an optional Redis read-through cache.
type Storage struct {
	db       *sqlx.DB
	driver   string
	cache    Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Open connects to the configured database, retrying with exponential backoff.
func Open(ctx context.Context, cfg config.Database, cache Cache, cacheTTL time.Duration, logger *zap.Logger) (*Storage, error) {
	const operation = "storage.Open"

	dsn, err := dataSourceName(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	var db *sqlx.DB

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to database...", zap.String("driver", cfg.Driver))

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, cfg.Driver, dsn)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("Database connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("Successfully connected to database")
	return New(db, cfg.Driver, cache, cacheTTL, logger), nil
}

// New wraps an open connection. cache may be nil.
func New(db *sqlx.DB, driver string, cache Cache, cacheTTL time.Duration, logger *zap.Logger) *Storage {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Storage{
		db:       db,
		driver:   driver,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func dataSourceName(cfg config.Database) (string, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.SSLMode,
		), nil
	case config.DriverSQLite:
		return cfg.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
	default:
		return "", fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// Migrate applies pending migrations for the storage's dialect.
func (s *Storage) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.db.DB, Dialect(s.driver), s.logger)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
