// Package config loads application settings from the environment, with a
// .env file picked up in development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	MigrationsPath string

	DatabaseType string // sqlite (default), postgres, mysql
	DatabasePath string // sqlite file
	DatabaseURL  string // postgres/mysql connection string

	PointsPerCorrect int

	// Admin panel
	AdminPasswordHash string // bcrypt hash; empty disables password login
	JWTSecret         string
	AdminSessionTTL   time.Duration

	// Optional Google sign-in for the admin panel
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	AdminAllowedEmails string // comma-separated

	// Upstream mirror the sync gateway pushes to; empty disables the push
	SyncUpstreamURL string
	SyncTimeout     time.Duration

	// Progress report email (SES); empty sender disables reports
	EmailSender string
	EmailRegion string
}

// Load reads configuration from environment variables with sensible defaults.
// A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		DatabaseType: getEnv("DB_TYPE", "sqlite"),
		DatabasePath: getEnv("DB_PATH", "./kindergarden.db"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),

		PointsPerCorrect: getEnvInt("POINTS_PER_CORRECT", 1),

		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminSessionTTL:   getEnvDuration("ADMIN_SESSION_TTL", 12*time.Hour),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		AdminAllowedEmails: getEnv("ADMIN_ALLOWED_EMAILS", ""),

		SyncUpstreamURL: getEnv("SYNC_UPSTREAM_URL", ""),
		SyncTimeout:     getEnvDuration("SYNC_TIMEOUT", 10*time.Second),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		EmailRegion: getEnv("EMAIL_REGION", "us-east-1"),
	}
}

// getEnv reads an environment variable or returns a default value
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
