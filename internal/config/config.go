// Package config manages environment variables.
//
// It reads variables from the process environment (and an optional `.env`
// file), loads them into structured Go types, and validates that required
// values are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Key idea in this file:
	- Env vars are read using a prefix: SIGNIFY_
	- Keys are normalized (lowercased, prefix removed)
	- The first "_" after the prefix separates the section from the key,
	  e.g. SIGNIFY_SERVER_READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout
	- Defaults are loaded first from a plain map, env values override them.
*/

// EnvPrefix is the prefix shared by every environment variable the app reads.
const EnvPrefix = "SIGNIFY_"

// ServiceName identifies this service in logs and APM dashboards.
const ServiceName = "signifylearn"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	RateLimit     RateLimitConfig      `koanf:"ratelimit"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains the MongoDB connection parameters.
//
// URL may be empty: the server still starts and reports the document store
// as unavailable on every endpoint that needs it.
type DatabaseConfig struct {
	URL            string        `koanf:"url"`
	Name           string        `koanf:"name" validate:"required"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port"; empty disables every Redis-backed feature.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// RateLimitConfig controls the fixed-window limiter applied to write endpoints.
// It is only active when Redis is configured.
type RateLimitConfig struct {
	Requests int           `koanf:"requests" validate:"min=0"`
	Window   time.Duration `koanf:"window"`
}

// Enabled reports whether the limiter should be installed.
func (c RateLimitConfig) Enabled() bool {
	return c.Requests > 0 && c.Window > 0
}

// defaultValues are loaded before the environment, so every key here can be
// overridden by a SIGNIFY_ variable.
func defaultValues() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                 "development",
		"server.port":                 "8000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"database.name":               "signifylearn",
		"database.connect_timeout":    "10s",
		"ratelimit.requests":          60,
		"ratelimit.window":            "1m",

		"observability.logging.level":                        "info",
		"observability.logging.format":                       "json",
		"observability.logging.slow_query_threshold":         "100ms",
		"observability.newrelic.app_log_forwarding_enabled":  true,
		"observability.newrelic.distributed_tracing_enabled": true,
		"observability.healthchecks.enabled":                 true,
		"observability.healthchecks.timeout":                 "5s",
		"observability.healthchecks.checks":                  []string{"database", "redis"},
	}
}

// envKey maps SIGNIFY_SERVER_READ_TIMEOUT to server.read_timeout.
// Observability is nested one level deeper, so
// SIGNIFY_OBSERVABILITY_LOGGING_LEVEL maps to observability.logging.level.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	key = strings.Replace(key, "_", ".", 1)
	if strings.HasPrefix(key, "observability.") {
		key = "observability." + strings.Replace(strings.TrimPrefix(key, "observability."), "_", ".", 1)
	}
	return key
}

// envValue turns comma separated lists into slices for the keys that expect one.
func envValue(s, v string) (string, interface{}) {
	key := envKey(s)
	if key == "server.cors_allowed_origins" || key == "observability.healthchecks.checks" {
		items := strings.Split(v, ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		return key, items
	}
	return key, v
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, applies observability defaults, validates it and
// returns the resulting config.
func LoadConfig() (*Config, error) {
	// "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labelled consistently.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
