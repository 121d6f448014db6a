package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	DatabaseURL    string
	Port           string
	LogLevel       string
	MigrationsPath string

	// SuggestionLimit caps the number of products the suggestion engine
	// returns. Zero keeps the service default.
	SuggestionLimit int

	// SchedulerInterval is how often the notification scheduler polls for
	// due reminders.
	SchedulerInterval time.Duration

	// Telegram delivery is optional. When the token is empty, notifications
	// fall back to the application log.
	TelegramToken  string
	TelegramChatID int64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		MigrationsPath: getEnvOrDefault("MIGRATIONS_PATH", "migrations"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
	}

	if cfg.DatabaseURL = os.Getenv("DATABASE_URL"); cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if raw := os.Getenv("SUGGESTION_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("SUGGESTION_LIMIT must be a positive integer, got %q", raw)
		}
		cfg.SuggestionLimit = limit
	}

	interval := getEnvOrDefault("SCHEDULER_INTERVAL", "30s")
	parsed, err := time.ParseDuration(interval)
	if err != nil {
		return nil, fmt.Errorf("SCHEDULER_INTERVAL must be a duration, got %q", interval)
	}
	cfg.SchedulerInterval = parsed

	if cfg.TelegramToken != "" {
		raw := os.Getenv("TELEGRAM_CHAT_ID")
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be set to a chat id when TELEGRAM_TOKEN is set")
		}
		cfg.TelegramChatID = chatID
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
