package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// AI provider chain
	AI AIConfig
}

// LoadConfig creates a new Config instance with values from environment
// variables or Docker secrets, depending on the environment.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	// A local .env is a development convenience only; missing is fine.
	if env == Development {
		_ = godotenv.Load()
	}

	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	loadAIConfig(cfg)

	if err := ValidateConfig(cfg, env); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadDevConfig reads environment variables with defaults that match the
// docker-compose development stack.
func loadDevConfig(cfg *Config) {
	cfg.ServerPort = envOrDefault("SERVER_PORT", "8080")
	cfg.ServerHost = envOrDefault("SERVER_HOST", "0.0.0.0")
	cfg.DBHost = envOrDefault("DB_HOST", "localhost")
	cfg.DBPort = envOrDefault("DB_PORT", "5432")
	cfg.DBUser = envOrDefault("DB_USER", "postgres")
	cfg.DBPassword = envOrDefault("DB_PASSWORD", "postgres")
	cfg.DBName = envOrDefault("DB_NAME", "lezzetly")
	cfg.DBSSLMode = envOrDefault("DB_SSL_MODE", "disable")
	cfg.RedisHost = envOrDefault("REDIS_HOST", "localhost")
	cfg.RedisPort = envOrDefault("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = envInt("REDIS_DB", 0)
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.JWTSecret = envOrDefault("JWT_SECRET", "dev-secret-change-me")
}

// loadCIConfig reads environment variables only; CI pipelines inject secrets
// as TEST_-prefixed variables, never as files.
func loadCIConfig(cfg *Config) {
	cfg.ServerPort = envOrDefault("SERVER_PORT", "8080")
	cfg.ServerHost = envOrDefault("SERVER_HOST", "0.0.0.0")
	cfg.DBHost = envOrDefault("DB_HOST", "localhost")
	cfg.DBPort = envOrDefault("DB_PORT", "5432")
	cfg.DBUser = envOrDefault("DB_USER", "postgres")
	cfg.DBName = envOrDefault("DB_NAME", "lezzetly_test")
	cfg.DBSSLMode = envOrDefault("DB_SSL_MODE", "disable")
	cfg.RedisHost = envOrDefault("REDIS_HOST", "localhost")
	cfg.RedisPort = envOrDefault("REDIS_PORT", "6379")
	cfg.RedisDB = 0

	cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("TEST_REDIS_URL")
}

// loadProdConfig reads everything from Docker secrets.
func loadProdConfig(cfg *Config) {
	cfg.ServerPort = readSecret("server_port")
	cfg.ServerHost = readSecret("server_host")
	cfg.DBHost = readSecret("db_host")
	cfg.DBPort = readSecret("db_port")
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBName = readSecret("db_name")
	cfg.DBSSLMode = readSecret("db_ssl_mode")
	cfg.RedisHost = readSecret("redis_host")
	cfg.RedisPort = readSecret("redis_port")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisDB = 0
	cfg.RedisURL = readSecret("redis_url")
	cfg.JWTSecret = readSecret("jwt_secret")
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
