package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "signifylearn", cfg.Database.Name)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 60, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SIGNIFY_PRIMARY_ENV", "production")
	t.Setenv("SIGNIFY_SERVER_PORT", "9090")
	t.Setenv("SIGNIFY_SERVER_READ_TIMEOUT", "12")
	t.Setenv("SIGNIFY_SERVER_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SIGNIFY_DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("SIGNIFY_DATABASE_NAME", "lessons")
	t.Setenv("SIGNIFY_RATELIMIT_WINDOW", "30s")
	t.Setenv("SIGNIFY_OBSERVABILITY_LOGGING_LEVEL", "warn")
	t.Setenv("SIGNIFY_OBSERVABILITY_HEALTHCHECKS_CHECKS", "database")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 12, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.Equal(t, "lessons", cfg.Database.Name)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.True(t, cfg.Observability.IsProduction())
	assert.True(t, cfg.Observability.HealthChecks.Has("database"))
	assert.False(t, cfg.Observability.HealthChecks.Has("redis"))
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("SIGNIFY_OBSERVABILITY_LOGGING_LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"SIGNIFY_SERVER_PORT":                                "server.port",
		"SIGNIFY_SERVER_WRITE_TIMEOUT":                       "server.write_timeout",
		"SIGNIFY_DATABASE_CONNECT_TIMEOUT":                   "database.connect_timeout",
		"SIGNIFY_OBSERVABILITY_NEWRELIC_LICENSE_KEY":         "observability.newrelic.license_key",
		"SIGNIFY_OBSERVABILITY_LOGGING_SLOW_QUERY_THRESHOLD": "observability.logging.slow_query_threshold",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	c := DefaultObservabilityConfig()
	c.Logging.Level = ""

	c.Environment = "production"
	assert.Equal(t, "info", c.GetLogLevel())

	c.Environment = "development"
	assert.Equal(t, "debug", c.GetLogLevel())

	c.Logging.Level = "error"
	assert.Equal(t, "error", c.GetLogLevel())
}

func TestRateLimitConfig_Enabled(t *testing.T) {
	assert.True(t, RateLimitConfig{Requests: 10, Window: time.Second}.Enabled())
	assert.False(t, RateLimitConfig{Requests: 0, Window: time.Second}.Enabled())
	assert.False(t, RateLimitConfig{Requests: 10}.Enabled())
}
