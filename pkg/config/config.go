// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Database. DatabaseURL selects the PostgreSQL store when set; the
	// local SQLite file is the default.
	DatabaseURL string
	SQLitePath  string

	// Analytics
	Timezone  string
	TopicDays int

	// Worker
	SummaryTime     string // "HH:MM" local wall clock
	SummaryInterval time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("CADENCE_DB_PATH", defaultSQLitePath()),

		Timezone:  getEnv("CADENCE_TIMEZONE", "Local"),
		TopicDays: getIntEnv("CADENCE_TOPIC_DAYS", 30),

		SummaryTime:     getEnv("SUMMARY_TIME", "21:00"),
		SummaryInterval: getDurationEnv("SUMMARY_CHECK_INTERVAL", time.Minute),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// UsePostgres reports whether the PostgreSQL store is configured.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// Location resolves the configured timezone. "Local" and the empty string
// resolve to the host timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cadence/cadence.db"
	}
	return home + "/.cadence/cadence.db"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
