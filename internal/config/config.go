package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	BackendURL string
	RedisAddr  string
	SessionTTL time.Duration
	GinMode    string
}

// Load reads configuration from the environment, with a .env file as an
// optional local override source.
func Load() *Config {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded .env file")
	}

	return &Config{
		Port:       getEnv("PORT", "8081"),
		BackendURL: getEnv("BACKEND_URL", "http://localhost:8080"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		SessionTTL: getEnvAsHours("SESSION_TTL_HOURS", 30*24),
		GinMode:    getEnv("GIN_MODE", "release"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsHours(key string, defaultHours int) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return time.Duration(defaultHours) * time.Hour
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return time.Duration(defaultHours) * time.Hour
	}
	return time.Duration(value) * time.Hour
}
