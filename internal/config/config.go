// Package config loads profilescreen settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings. Flags in cmd/profilescreen override these.
type Config struct {
	GatewayURL  string        `env:"GATEWAY_URL"`
	UserID      int64         `env:"USER_ID"      envDefault:"1"`
	FetchLimit  int           `env:"FETCH_LIMIT"  envDefault:"2"`
	FetchPolicy string        `env:"FETCH_POLICY" envDefault:"independent"`
	Fixture     string        `env:"FIXTURE"`
	LogLevel    string        `env:"LOG_LEVEL"    envDefault:"info"`
	LogFile     string        `env:"LOG_FILE"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"5s"`
}

// Prefix is prepended to every variable name, e.g. PROFILESCREEN_USER_ID.
const Prefix = "PROFILESCREEN_"

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	if c.FetchLimit <= 0 {
		return fmt.Errorf("fetch limit must be positive, got %d", c.FetchLimit)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}
