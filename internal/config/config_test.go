package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv provides the credentials that have no defaults.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("USERSVC_DATABASE__USER", "app")
	t.Setenv("USERSVC_DATABASE__NAME", "users")
}

func TestNew_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "127.0.0.1", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "local env logs to console by default")
}

func TestNew_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("USERSVC_PRIMARY__ENV", "production")
	t.Setenv("USERSVC_SERVER__PORT", "8080")
	t.Setenv("USERSVC_DATABASE__HOST", "db.internal")
	t.Setenv("USERSVC_DATABASE__PASSWORD", "secret")
	t.Setenv("USERSVC_LOGGING__LEVEL", "debug")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format, "non-local envs default to json logs")
}

func TestNew_MissingCredentials(t *testing.T) {
	// Without database user/name the validator rejects the config.
	t.Setenv("USERSVC_DATABASE__USER", "")
	t.Setenv("USERSVC_DATABASE__NAME", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}

func TestNew_InvalidLogFormat(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("USERSVC_LOGGING__FORMAT", "xml")

	_, err := New()
	require.Error(t, err)
}
