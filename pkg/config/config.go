package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port                   string
	Env                    string
	PostgresConnStr        string
	MongoURI               string
	MongoDatabase          string
	JWTSecret              string
	TokenValidFor          time.Duration
	NotificationPerUserMax int
}

func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    getEnv("ENV", "development"),
		PostgresConnStr:        getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:               getEnv("MONGO_URI", ""),
		MongoDatabase:          getEnv("MONGO_DATABASE", "ktap"),
		JWTSecret:              getEnv("JWT_SECRET", "supersecretjwtkey"),
		TokenValidFor:          getEnvDuration("TOKEN_VALID_DURATION", 168*time.Hour),
		NotificationPerUserMax: getEnvInt("NOTIFICATION_PER_USER_MAX", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
