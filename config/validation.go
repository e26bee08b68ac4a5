package config

import (
	"fmt"
	"sort"
	"strings"
)

// requiredFields maps each environment to the Config fields that must be
// non-empty once loading is done. Development and Test get defaults for
// everything, so nothing is hard-required there.
func requiredFields(cfg *Config, env Environment) map[string]string {
	switch env {
	case CI:
		return map[string]string{
			"TEST_DB_PASSWORD":    cfg.DBPassword,
			"TEST_JWT_SECRET":     cfg.JWTSecret,
			"TEST_REDIS_PASSWORD": cfg.RedisPassword,
		}
	case Production:
		return map[string]string{
			"db_host secret":        cfg.DBHost,
			"db_user secret":        cfg.DBUser,
			"db_password secret":    cfg.DBPassword,
			"db_name secret":        cfg.DBName,
			"jwt_secret secret":     cfg.JWTSecret,
			"redis_host secret":     cfg.RedisHost,
			"redis_password secret": cfg.RedisPassword,
			"server_port secret":    cfg.ServerPort,
		}
	default:
		return nil
	}
}

// ValidateConfig checks that every value the environment requires is present.
func ValidateConfig(cfg *Config, env Environment) error {
	var missing []string
	for name, value := range requiredFields(cfg, env) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
