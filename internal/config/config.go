// Package config loads dashboard settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI and the dashboard service.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`

	// PageSize is the default "limit" sent with list requests.
	PageSize int `env:"DASH_PAGE_SIZE" envDefault:"20"`

	// DateLayout formats date-range filters in query params and Date columns.
	DateLayout string `env:"DASH_DATE_LAYOUT" envDefault:"2006-01-02"`

	Locale   string `env:"DASH_LOCALE" envDefault:"en"`
	Currency string `env:"DASH_CURRENCY" envDefault:"USD"`

	// ColumnsFile optionally points to a YAML column spec overriding built-in views.
	ColumnsFile string `env:"DASH_COLUMNS_FILE"`
}

// Development reports whether the app runs in development mode.
func (c Config) Development() bool {
	return c.AppEnv == "development"
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("DASH_PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.DateLayout == "" {
		return errors.New("DASH_DATE_LAYOUT must not be empty")
	}
	return nil
}

// Load reads optional dotenv files and then parses the environment.
// Files that do not exist are skipped; variables already set win.
func Load(dotenvFiles ...string) (Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
