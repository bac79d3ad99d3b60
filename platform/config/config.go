// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// RedisConfig provides settings for the optional metadata cache.
type RedisConfig interface {
	GetRedisURL() string
	GetMetadataCacheTTL() time.Duration
}

// APIKeyConfig provides settings for the optional API key filter.
type APIKeyConfig interface {
	IsAPIKeyEnabled() bool
	GetAPIKeys() []string
}

// RateLimitConfig provides settings for per-IP rate limiting.
type RateLimitConfig interface {
	GetRateLimitPerSecond() float64
	GetRateLimitBurst() int
}

// SearchConfig provides settings for the inspection search module.
type SearchConfig interface {
	GetQueryTimeout() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	CORSAllowAll       bool
	CORSOrigins        []string
	RedisURL           string
	MetadataCacheTTL   time.Duration
	APIKeyEnabled      bool
	APIKeys            []string
	RateLimitPerSecond float64
	RateLimitBurst     int
	QueryTimeout       time.Duration
}

// Load reads configuration from the environment, with .env support for
// local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	apiKeys := splitCSV(getEnv("API_KEYS", ""))
	apiKeyEnabled := strings.EqualFold(getEnv("API_KEY_ENABLED", "false"), "true")

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		RedisURL:           getEnv("REDIS_URL", ""),
		MetadataCacheTTL:   mustDuration(getEnv("METADATA_CACHE_TTL", "10m")),
		APIKeyEnabled:      apiKeyEnabled,
		APIKeys:            apiKeys,
		RateLimitPerSecond: mustFloat(getEnv("RATE_LIMIT_PER_SECOND", "1.67")),
		RateLimitBurst:     mustInt(getEnv("RATE_LIMIT_BURST", "100")),
		QueryTimeout:       mustDuration(getEnv("DB_QUERY_TIMEOUT", "3s")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.APIKeyEnabled && len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("API_KEYS is required when API_KEY_ENABLED is true")
	}

	return cfg, nil
}

// GetDatabaseURL returns the database connection URL.
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// GetHTTPAddr returns the HTTP listen address.
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }

// GetCORSAllowAll reports whether any origin is allowed.
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }

// GetCORSOrigins returns the allowed CORS origins.
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GetRedisURL returns the redis connection URL, empty when caching is disabled.
func (c *Config) GetRedisURL() string { return c.RedisURL }

// GetMetadataCacheTTL returns how long cached metadata lists stay fresh.
func (c *Config) GetMetadataCacheTTL() time.Duration { return c.MetadataCacheTTL }

// IsAPIKeyEnabled reports whether the API key filter is active.
func (c *Config) IsAPIKeyEnabled() bool { return c.APIKeyEnabled }

// GetAPIKeys returns the set of accepted API keys.
func (c *Config) GetAPIKeys() []string { return c.APIKeys }

// GetRateLimitPerSecond returns the sustained per-IP request rate.
func (c *Config) GetRateLimitPerSecond() float64 { return c.RateLimitPerSecond }

// GetRateLimitBurst returns the per-IP burst capacity.
func (c *Config) GetRateLimitBurst() int { return c.RateLimitBurst }

// GetQueryTimeout returns the deadline applied to store queries.
func (c *Config) GetQueryTimeout() time.Duration { return c.QueryTimeout }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		panic("invalid duration: " + value)
	}
	return d
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		panic("invalid integer: " + value)
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		panic("invalid float: " + value)
	}
	return f
}
