// Package config loads server configuration from the environment.
//
// A `.env` file in the working directory is applied first (development);
// real environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config is the full server configuration.
type Config struct {
	Port           string        `env:"PORT" envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"` // json | console
	WordsSource    string        `env:"WORDS_SOURCE"`                 // path, http(s) URL, or empty for embedded list
	Store          string        `env:"STORE" envDefault:"memory"`    // memory | sqlite
	DBPath         string        `env:"DB_PATH" envDefault:"./data/wordle.db"`
	SessionSecret  string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	DailySalt      string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	Production     bool          `env:"PRODUCTION" envDefault:"false"` // secure cookies
}

// Load reads the optional .env file(s) and parses the environment.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
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

// Validate checks values the env parser cannot.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("config: unknown STORE %q", c.Store)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	if c.SessionSecret == "" {
		return errors.New("config: SESSION_SECRET must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: REQUEST_TIMEOUT must be positive")
	}
	return nil
}
