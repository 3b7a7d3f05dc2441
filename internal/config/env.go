// Package config loads runtime settings from FTQ_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

type Config struct {
	LogLevel    string   `env:"FTQ_LOG_LEVEL"    envDefault:"info"`
	LogFile     string   `env:"FTQ_LOG_FILE"`
	NoColor     bool     `env:"FTQ_NO_COLOR"     envDefault:"false"`
	AltScreen   bool     `env:"FTQ_ALT_SCREEN"   envDefault:"false"`
	DefaultFuel []string `env:"FTQ_DEFAULT_FUEL" envDefault:"Wood" envSeparator:","`
}

// Load parses and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Fuels(); err != nil {
		return err
	}
	return nil
}

// Fuels resolves DefaultFuel to catalog resources. Blank entries are
// skipped so FTQ_DEFAULT_FUEL="" starts with nothing selected.
func (c Config) Fuels() ([]catalog.Resource, error) {
	out := make([]catalog.Resource, 0, len(c.DefaultFuel))
	for _, name := range c.DefaultFuel {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		r, err := catalog.ParseResource(name)
		if err == nil && r.Category() != catalog.CategoryFuel {
			err = &catalog.InvalidValueError{Kind: "fuel", Value: name}
		}
		if err != nil {
			return nil, fmt.Errorf("FTQ_DEFAULT_FUEL: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}
