package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings, sourced from the environment.
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string

	JWTSecret string
	TokenTTL  time.Duration

	// AdminSessionTTL bounds how long a portal acknowledgement stays valid.
	AdminSessionTTL time.Duration

	// CodespaceTTL is the default lifetime of a newly created codespace.
	CodespaceTTL time.Duration

	LogLevel  string
	LogFormat string // json | console
}

func Load() *Config {
	return &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "ecolearn"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		TokenTTL:        getDuration("TOKEN_TTL", 24*time.Hour),
		AdminSessionTTL: getDuration("ADMIN_SESSION_TTL", 12*time.Hour),
		CodespaceTTL:    getDuration("CODESPACE_TTL", time.Hour),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if mins, err := strconv.Atoi(v); err == nil {
		return time.Duration(mins) * time.Minute
	}
	return fallback
}
