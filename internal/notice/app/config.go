package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string        // Optional: issuer claim for tokens (default: noticeboard)
	JWTSecret string        // Optional: HS256 signing secret; a random one is generated when unset
	TokenTTL  time.Duration // Optional: access token lifetime (default: 168h)
	Leeway    time.Duration // Optional: clock skew allowed when verifying tokens (default: 0)

	AdminUsername string // Optional: bootstrap admin username (default: admin)
	AdminPassword string // Optional: bootstrap admin password (default: admin123)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./noticeboard.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 5001)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:    getEnvOrDefault("NOTICE_ISSUER", "noticeboard"),
		JWTSecret: os.Getenv("NOTICE_JWT_SECRET"),
		TokenTTL:  getEnvDurationOrDefault("NOTICE_TOKEN_TTL", 7*24*time.Hour),
		Leeway:    getEnvDurationOrDefault("NOTICE_TOKEN_LEEWAY", 0),

		AdminUsername: getEnvOrDefault("NOTICE_ADMIN_USERNAME", "admin"),
		AdminPassword: getEnvOrDefault("NOTICE_ADMIN_PASSWORD", "admin123"),

		DatabaseFile:         getEnvOrDefault("NOTICE_DATABASE_FILE", "noticeboard.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 5001),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer hours for short-hand configs
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}

	return defaultValue
}
