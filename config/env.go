package config

import (
	"fmt"
	"os"
)

type AppEnv struct {
	LogLvl string

	JWTSecret string

	SeedAdminUsername string
	SeedAdminPassword string

	PgHost     string
	PgPort     string
	PgUser     string
	PgPassword string
	PgDbName   string
	SSLMode    string
	TimeZone   string
}

// GetEnvironment reads process env. The postgres block is only validated when
// requirePostgres is set (store.driver == "postgres").
func GetEnvironment(requirePostgres bool) (env AppEnv, err error) {
	env = AppEnv{
		LogLvl:            getEnv("LOG_LEVEL", "debug"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		SeedAdminUsername: getEnv("SEED_ADMIN_USERNAME", "admin"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		PgHost:            getEnv("POSTGRES_HOST", ""),
		PgPort:            getEnv("POSTGRES_PORT", ""),
		PgUser:            getEnv("POSTGRES_USER", ""),
		PgPassword:        getEnv("POSTGRES_PASSWORD", ""),
		PgDbName:          getEnv("POSTGRES_DB", ""),
		SSLMode:           getEnv("POSTGRES_SSL_MODE", "disable"),
		TimeZone:          getEnv("POSTGRES_TIMEZONE", "Asia/Riyadh"),
	}

	if env.JWTSecret == "" {
		return env, fmt.Errorf("JWT_SECRET is required")
	}

	if env.SeedAdminPassword == "" {
		return env, fmt.Errorf("SEED_ADMIN_PASSWORD is required")
	}

	if requirePostgres {
		if env.PgHost == "" || env.PgPort == "" || env.PgUser == "" ||
			env.PgPassword == "" || env.PgDbName == "" {
			return env, fmt.Errorf("incorrect environment params")
		}
	}

	return env, nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
