package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "CI", "SERVER_PORT", "SERVER_HOST",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_URL",
		"JWT_SECRET", "SECRETS_DIR",
		"AI_PRIMARY_NAME", "AI_PRIMARY_BASE_URL", "AI_PRIMARY_API_KEY",
		"AI_PRIMARY_MODEL", "AI_PRIMARY_TIMEOUT",
		"AI_FALLBACK_NAME", "AI_FALLBACK_API_KEY", "AI_FALLBACK_ENABLED",
	} {
		t.Setenv(key, "")
	}
	// Keep secret lookups away from a real /run/secrets.
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "lezzetly")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "recipes")
	t.Setenv("DB_SSL_MODE", "require")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://cache:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "lezzetly", cfg.DBUser)
	assert.Equal(t, "hunter2", cfg.DBPassword)
	assert.Equal(t, "recipes", cfg.DBName)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://cache:6379", cfg.RedisURL)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "lezzetly", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "dev-secret-change-me", cfg.JWTSecret)
	assert.Equal(t, "6379", cfg.RedisPort)
}

func TestLoadConfigAIProviders(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "deepseek", cfg.AI.Primary.Name)
		assert.Equal(t, "https://api.deepseek.com/v1", cfg.AI.Primary.BaseURL)
		assert.Equal(t, "deepseek-chat", cfg.AI.Primary.Model)
		assert.Equal(t, 90*time.Second, cfg.AI.Primary.Timeout)
		assert.Equal(t, "openai", cfg.AI.Fallback.Name)
		assert.False(t, cfg.AI.FallbackEnabled)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AI_PRIMARY_API_KEY", "sk-primary")
		t.Setenv("AI_PRIMARY_MODEL", "deepseek-reasoner")
		t.Setenv("AI_PRIMARY_TIMEOUT", "30")
		t.Setenv("AI_FALLBACK_ENABLED", "true")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "sk-primary", cfg.AI.Primary.APIKey)
		assert.Equal(t, "deepseek-reasoner", cfg.AI.Primary.Model)
		assert.Equal(t, 30*time.Second, cfg.AI.Primary.Timeout)
		assert.True(t, cfg.AI.FallbackEnabled)
	})
}

func TestValidateConfig(t *testing.T) {
	t.Run("development needs nothing", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(&Config{}, Development))
	})

	t.Run("production requires secrets", func(t *testing.T) {
		err := ValidateConfig(&Config{}, Production)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt_secret")
	})
}
