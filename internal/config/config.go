package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"smart-auction/utils"
)

// Config holds process-wide settings read once at startup.
type Config struct {
	Port          string
	Environment   string
	SweepInterval time.Duration
	AMQPURL       string
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing optional values fall back to defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		utils.Info("loaded configuration from .env file", nil)
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("ENV"),
		AMQPURL:     os.Getenv("AMQP_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.SweepInterval = time.Minute
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SWEEP_INTERVAL %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("SWEEP_INTERVAL must be positive, got %q", raw)
		}
		cfg.SweepInterval = d
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
