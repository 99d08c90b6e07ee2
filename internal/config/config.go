// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the server reads at startup.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"GALAXY_ADDR" envDefault:":8080"`

	// MapSize is the number of worlds generated for a fresh galaxy.
	MapSize int `env:"GALAXY_MAP_SIZE" envDefault:"255"`

	// DBPath is the sqlite snapshot database. Empty disables persistence.
	DBPath string `env:"GALAXY_DB_PATH" envDefault:"galaxy.db"`

	// TokenSecret signs session tokens. Generated at startup when empty,
	// which invalidates sessions across restarts.
	TokenSecret string `env:"GALAXY_TOKEN_SECRET"`

	// TokenTTL is how long an issued session token stays valid.
	TokenTTL time.Duration `env:"GALAXY_TOKEN_TTL" envDefault:"72h"`

	// TurnDuration is the starting turn length before player preferences
	// take over.
	TurnDuration time.Duration `env:"GALAXY_TURN_DURATION" envDefault:"180s"`

	// CommandRate limits inbound commands per connection, per second.
	CommandRate float64 `env:"GALAXY_COMMAND_RATE" envDefault:"10"`

	// CommandBurst is the rate limiter's burst allowance.
	CommandBurst int `env:"GALAXY_COMMAND_BURST" envDefault:"20"`

	// SaveEvery saves a snapshot after every Nth turn. 1 saves each turn.
	SaveEvery int `env:"GALAXY_SAVE_EVERY" envDefault:"1"`
}

// Load reads the optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.MapSize < 2 {
		return Config{}, fmt.Errorf("GALAXY_MAP_SIZE must be at least 2, got %d", cfg.MapSize)
	}
	if cfg.SaveEvery < 1 {
		cfg.SaveEvery = 1
	}
	return cfg, nil
}
