package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort      string `env:"HTTP_PORT"      env-default:"8080"`
	LogLevel      string `env:"LOG_LEVEL"      env-default:"info"`
	AppEnv        string `env:"APP_ENV"        env-default:"local"`
	StorageDriver string `env:"STORAGE_DRIVER" env-default:"memory"`

	DBHost     string `env:"DB_HOST"     env-default:"localhost"`
	DBPort     string `env:"DB_PORT"     env-default:"5432"`
	DBUser     string `env:"DB_USER"     env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD" env-default:"postgres"`
	DBName     string `env:"DB_NAME"     env-default:"ordering"`
	DBSslMode  string `env:"DB_SSLMODE"  env-default:"disable"`

	JWTSecret string        `env:"JWT_SECRET" env-default:"change-me"`
	JWTTTL    time.Duration `env:"JWT_TTL"    env-default:"24h"`

	TaxRate                string `env:"TAX_RATE"                  env-default:"0.10"`
	DefaultPrepTimeMinutes int    `env:"DEFAULT_PREP_TIME_MINUTES" env-default:"30"`
	SearchDateLayout       string `env:"SEARCH_DATE_LAYOUT"        env-default:"1/2/2006"`
	SearchTimezone         string `env:"SEARCH_TIMEZONE"           env-default:"UTC"`

	TrackerPollInterval time.Duration `env:"TRACKER_POLL_INTERVAL" env-default:"5s"`
	BoardPollInterval   time.Duration `env:"BOARD_POLL_INTERVAL"   env-default:"10s"`

	RedispatchSchedule string `env:"REDISPATCH_SCHEDULE" env-default:"*/5 * * * * *"`
	ReconcileSchedule  string `env:"RECONCILE_SCHEDULE"  env-default:"*/10 * * * * *"`
}

// LoadConfig reads envFile into the process environment when it exists and then
// fills Config from the environment.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var driverErr, taxErr, tzErr error
	if c.StorageDriver != StorageMemory && c.StorageDriver != StoragePostgres {
		driverErr = fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMemory, StoragePostgres, c.StorageDriver)
	}
	if _, err := c.TaxRateDecimal(); err != nil {
		taxErr = err
	}
	if _, err := c.SearchLocation(); err != nil {
		tzErr = err
	}
	return errors.Join(driverErr, taxErr, tzErr)
}

func (c Config) TaxRateDecimal() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("TAX_RATE: %w", err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("TAX_RATE must not be negative, got %s", c.TaxRate)
	}
	return rate, nil
}

func (c Config) SearchLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.SearchTimezone)
	if err != nil {
		return nil, fmt.Errorf("SEARCH_TIMEZONE: %w", err)
	}
	return loc, nil
}
