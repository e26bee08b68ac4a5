package config

import (
	"os"
	"strconv"
	"time"
)

// ProviderSettings describes one OpenAI-compatible chat-completions provider.
type ProviderSettings struct {
	Name    string
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// AIConfig holds the generation provider chain. The fallback provider is
// only consulted when the primary signals rate limiting and FallbackEnabled
// is set.
type AIConfig struct {
	Primary         ProviderSettings
	Fallback        ProviderSettings
	FallbackEnabled bool
}

const defaultProviderTimeout = 90 * time.Second

// loadAIConfig reads provider settings from environment variables, with API
// keys falling back to Docker secrets the way database credentials do.
func loadAIConfig(cfg *Config) {
	cfg.AI.Primary = ProviderSettings{
		Name:    envOrDefault("AI_PRIMARY_NAME", "deepseek"),
		BaseURL: envOrDefault("AI_PRIMARY_BASE_URL", "https://api.deepseek.com/v1"),
		APIKey:  envOrSecret("AI_PRIMARY_API_KEY", "ai_primary_api_key"),
		Model:   envOrDefault("AI_PRIMARY_MODEL", "deepseek-chat"),
		Timeout: envDuration("AI_PRIMARY_TIMEOUT", defaultProviderTimeout),
	}
	cfg.AI.Fallback = ProviderSettings{
		Name:    envOrDefault("AI_FALLBACK_NAME", "openai"),
		BaseURL: envOrDefault("AI_FALLBACK_BASE_URL", "https://api.openai.com/v1"),
		APIKey:  envOrSecret("AI_FALLBACK_API_KEY", "ai_fallback_api_key"),
		Model:   envOrDefault("AI_FALLBACK_MODEL", "gpt-4o-mini"),
		Timeout: envDuration("AI_FALLBACK_TIMEOUT", defaultProviderTimeout),
	}
	cfg.AI.FallbackEnabled = os.Getenv("AI_FALLBACK_ENABLED") == "true"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrSecret(envKey, secretName string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return readSecret(secretName)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
