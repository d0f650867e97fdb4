package config

import (
	"github.com/caarlos0/env/v11"

	"banner-rotator/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields
// are populated from environment variables using the caarlos0/env
// library; nested structs are tagged with envPrefix so their fields are
// parsed with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is only
	// used for logging context.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server, populated from
	// HTTP_-prefixed variables.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger, populated from LOG_-prefixed
	// variables.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection, populated from
	// PSQL_-prefixed variables.
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their tagged defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
