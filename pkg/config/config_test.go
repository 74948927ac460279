package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("LINGO_DEFAULT_LOCALE", "")
		t.Setenv("LINGO_LOCALES", "")
		t.Setenv("LINGO_COOKIE_NAME", "")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.DefaultLocale)
		assert.Equal(t, []string{"en"}, cfg.Locales)
		assert.Equal(t, "locale", cfg.CookieName)
		assert.Equal(t, "production", cfg.Environment)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("LINGO_DEFAULT_LOCALE", "es")
		t.Setenv("LINGO_LOCALES", "es,en,de")
		t.Setenv("LINGO_COOKIE_NAME", "lang")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("ENVIRONMENT", "staging")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.DefaultLocale)
		assert.Equal(t, []string{"es", "en", "de"}, cfg.Locales)
		assert.Equal(t, "lang", cfg.CookieName)
		assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
		assert.Equal(t, "staging", cfg.Environment)
	})
}
