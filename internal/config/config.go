package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	DataFile  string `env:"CHECKLIST_DATA_FILE" envDefault:"surge_checklist.json"`
	Currency  string `env:"CHECKLIST_CURRENCY" envDefault:"USD"`
	PublicURL string `env:"CHECKLIST_PUBLIC_URL" envDefault:"http://localhost:8080/"`
	Debug     bool   `env:"CHECKLIST_DEBUG" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
