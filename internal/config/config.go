// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config.
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional values.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if
	// present, before any env vars are read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Env vars are read with the USERSVC_ prefix and use "__" to express
// nesting, e.g.:
//
//	USERSVC_SERVER__PORT          -> server.port    -> Config.Server.Port
//	USERSVC_DATABASE__NAME        -> database.name  -> Config.Database.Name
//
// Single underscores stay part of the key ("cors_allowed_origins").

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from. The
// `validate:"..."` tags are enforced by go-playground/validator after
// defaults have been applied.
type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and to switch behavior (console logging, SQL
// tracing) in the local environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// SocketCandidates is an ordered list of unix socket directories; the
// first one that exists on disk is used instead of TCP. An explicitly
// set SocketPath is probed before the candidates.
type DatabaseConfig struct {
	Host             string   `koanf:"host" validate:"required"`
	Port             int      `koanf:"port" validate:"required"`
	User             string   `koanf:"user" validate:"required"`
	Password         string   `koanf:"password"`
	Name             string   `koanf:"name" validate:"required"`
	SSLMode          string   `koanf:"ssl_mode" validate:"required"`
	SocketPath       string   `koanf:"socket_path"`
	SocketCandidates []string `koanf:"socket_candidates"`
	MaxConns         int      `koanf:"max_conns" validate:"required"`
	ConnMaxLifetime  int      `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime  int      `koanf:"conn_max_idle_time" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format ("json" or "console").
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// New loads configuration from environment variables, applies defaults,
// validates the result, and returns it.
func New() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("USERSVC_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "USERSVC_")), "__", ".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills optional values so only credentials and
// environment-specific overrides need to be configured.
func (cfg *Config) applyDefaults() {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "local"
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "4000"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		// The known React dev origin.
		cfg.Server.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}

	if cfg.Database.Host == "" {
		cfg.Database.Host = "127.0.0.1"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if len(cfg.Database.SocketCandidates) == 0 {
		cfg.Database.SocketCandidates = []string{"/var/run/postgresql", "/tmp"}
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 1800
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 300
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		if cfg.Primary.Env == "local" {
			cfg.Logging.Format = "console"
		} else {
			cfg.Logging.Format = "json"
		}
	}
}
