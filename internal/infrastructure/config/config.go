package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (ignores error if not found)
	godotenv.Load()
}

type Config struct {
	Port         string
	DatabasePath string // sqlite file, used when DatabaseURL is empty
	DatabaseURL  string // postgres DSN; takes precedence over DatabasePath
	SessionTTL   int    // minutes
	SessionSweep int    // minutes between expired-session sweeps
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./data/portal.db"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		SessionTTL:   getEnvAsInt("SESSION_TTL_MINUTES", 60),
		SessionSweep: getEnvAsInt("SESSION_SWEEP_MINUTES", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
