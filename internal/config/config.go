// Package config loads the server configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config is the runtime configuration of the portfolio server.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	DatabasePath     string        `env:"PORTFOLIO_DB_PATH" envDefault:"portfolio.db"`
	TrackVisitors    bool          `env:"PORTFOLIO_TRACK_VISITORS" envDefault:"true"`
	VisitorRetention time.Duration `env:"PORTFOLIO_VISITOR_RETENTION" envDefault:"8760h"`
	HashSalt         string        `env:"PORTFOLIO_HASH_SALT"`

	SessionTTL    time.Duration `env:"PORTFOLIO_SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"PORTFOLIO_SWEEP_INTERVAL" envDefault:"1m"`

	SubmitDelay       time.Duration `env:"PORTFOLIO_SUBMIT_DELAY" envDefault:"1500ms"`
	ConfirmationDelay time.Duration `env:"PORTFOLIO_CONFIRMATION_DELAY" envDefault:"5s"`
}

// Load reads an optional .env file and parses the environment. Variables
// already set take precedence over the file.
func Load(envFile string) (*Config, error) {
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "load env file %s", envFile)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config error: PORT must not be empty")
	}
	durations := map[string]time.Duration{
		"PORTFOLIO_SESSION_TTL":        c.SessionTTL,
		"PORTFOLIO_SWEEP_INTERVAL":     c.SweepInterval,
		"PORTFOLIO_SUBMIT_DELAY":       c.SubmitDelay,
		"PORTFOLIO_CONFIRMATION_DELAY": c.ConfirmationDelay,
	}
	for name, d := range durations {
		if d <= 0 {
			return errors.Errorf("config error: %s must be positive", name)
		}
	}
	if c.TrackVisitors {
		if strings.TrimSpace(c.DatabasePath) == "" {
			return errors.New("config error: PORTFOLIO_DB_PATH is required when tracking visitors")
		}
		if c.VisitorRetention <= 0 {
			return errors.New("config error: PORTFOLIO_VISITOR_RETENTION must be positive")
		}
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
