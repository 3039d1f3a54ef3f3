package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/i18n"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`

	Database Database `envPrefix:"DB_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Telegram Telegram `envPrefix:"TELEGRAM_"`
	HTTP     HTTP     `envPrefix:"HTTP_"`

	DowntimeMode       string  `env:"DOWNTIME_MODE" envDefault:"adjusted"`
	DefaultLanguage    string  `env:"DEFAULT_LANGUAGE" envDefault:"pt"`
	SensitivityPercent float64 `env:"SENSITIVITY_PERCENT" envDefault:"10"`
	CurvePoints        int     `env:"CURVE_POINTS" envDefault:"100"`
}

type Database struct {
	Driver          string        `env:"DRIVER" envDefault:"postgres"`
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            int           `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER"`
	Password        string        `env:"PASSWORD"`
	Name            string        `env:"NAME" envDefault:"sublimation"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	Path            string        `env:"PATH" envDefault:"sublimation.db"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"2m"`
}

type Redis struct {
	Addr       string        `env:"ADDR" envDefault:"localhost:6379"`
	Password   string        `env:"PASSWORD"`
	DB         int           `env:"DB" envDefault:"0"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	CacheTTL   time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

type Telegram struct {
	Enabled       bool          `env:"ENABLED" envDefault:"true"`
	Token         string        `env:"TOKEN"`
	Debug         bool          `env:"DEBUG" envDefault:"false"`
	ExportLimit   int64         `env:"EXPORT_LIMIT" envDefault:"10"`
	ExportWindow  time.Duration `env:"EXPORT_WINDOW" envDefault:"1h"`
	UpdateTimeout int           `env:"UPDATE_TIMEOUT" envDefault:"60"`
}

type HTTP struct {
	Enabled         bool          `env:"ENABLED" envDefault:"true"`
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	Token           string        `env:"TOKEN"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the cross-field rules env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.User == "" {
			errs = append(errs, errors.New("DB_USER is required for postgres"))
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			errs = append(errs, errors.New("DB_PATH is required for sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver))
	}

	if !c.Telegram.Enabled && !c.HTTP.Enabled {
		errs = append(errs, errors.New("at least one of TELEGRAM_ENABLED or HTTP_ENABLED must be true"))
	}
	if c.Telegram.Enabled && c.Telegram.Token == "" {
		errs = append(errs, errors.New("TELEGRAM_TOKEN is required when the bot is enabled"))
	}

	if _, ok := engine.ParseDowntimeMode(c.DowntimeMode); !ok {
		errs = append(errs, fmt.Errorf("invalid DOWNTIME_MODE %q", c.DowntimeMode))
	}
	if _, ok := i18n.Parse(c.DefaultLanguage); !ok {
		errs = append(errs, fmt.Errorf("unsupported DEFAULT_LANGUAGE %q", c.DefaultLanguage))
	}
	if err := engine.ValidateSensitivityPercent(c.SensitivityPercent); err != nil {
		errs = append(errs, fmt.Errorf("SENSITIVITY_PERCENT: %w", err))
	}
	if c.CurvePoints < 2 {
		errs = append(errs, errors.New("CURVE_POINTS must be at least 2"))
	}

	return errors.Join(errs...)
}

// DefaultInputs are the reference inputs with the configured downtime mode.
func (c *Config) DefaultInputs() engine.Inputs {
	in := engine.DefaultInputs()
	if mode, ok := engine.ParseDowntimeMode(c.DowntimeMode); ok {
		in.Production.DowntimeMode = mode
	}
	return in
}
