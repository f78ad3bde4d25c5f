// Package config loads application configuration from the environment.
package config

import "os"

// Config holds the runtime settings for the expense tracker.
type Config struct {
	// DBPath is the SQLite database file location.
	DBPath string

	// LogLevel controls structured log verbosity (debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local use.
func Load() *Config {
	return &Config{
		DBPath:   getEnv("DB_PATH", "expenses.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
