package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"leadflow/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Webhook configures the workflow engine endpoints (N8N_WEBHOOK_ prefix,
	// e.g. N8N_WEBHOOK_URL and N8N_WEBHOOK_URL_LOCAL_BUSINESSES).
	Webhook configs.Webhook `envPrefix:"N8N_WEBHOOK_"`

	// Auth configures session token verification (AUTH_ prefix).
	Auth configs.Auth `envPrefix:"AUTH_"`

	// OAuth configures Gmail token refresh (GOOGLE_ prefix).
	OAuth configs.OAuth `envPrefix:"GOOGLE_"`

	// Schedule configures the optional launch dispatcher (SCHEDULE_ prefix).
	Schedule configs.Schedule `envPrefix:"SCHEDULE_"`
}

// Load reads configuration from environment variables into a Config. A .env
// file in the working directory is applied first when present. If parsing
// fails, an error is returned.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
