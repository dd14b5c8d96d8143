package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	LogLevel string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	// SessionStore selects the session backend: "redis" (default) or
	// "memory" for local runs without a Redis instance.
	SessionStore string
	SessionTTL   time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return Config{
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DatabaseDSN: must("DATABASE_DSN"),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),

		SessionStore: getenv("SESSION_STORE", "redis"),
		SessionTTL:   duration("SESSION_TTL", 24*time.Hour),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func must(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return v
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("invalid %s %q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
