// Package config loads engine settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds translation engine settings sourced from the environment.
type Config struct {
	// DefaultLocale is the fallback locale whose catalog must be complete.
	DefaultLocale string `env:"LINGO_DEFAULT_LOCALE" envDefault:"en"`

	// Locales is the closed set of supported locales, comma-separated.
	Locales []string `env:"LINGO_LOCALES" envSeparator:"," envDefault:"en"`

	// CookieName is the preference cookie used by the HTTP middleware.
	CookieName string `env:"LINGO_COOKIE_NAME" envDefault:"locale"`

	// RedisURL enables the Redis preference store when set.
	RedisURL string `env:"REDIS_URL"`

	// SentryDSN enables Sentry log forwarding when set.
	SentryDSN string `env:"SENTRY_DSN"`

	// Environment names the deployment environment for error reporting.
	Environment string `env:"ENVIRONMENT" envDefault:"production"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
