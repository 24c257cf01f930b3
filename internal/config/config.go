package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, loaded from the environment.
// A .env file is honored when present (local development).
type Config struct {
	// Identity
	UserID string

	// Storage
	SQLiteDBPath string

	// Seeded category set
	BudgetsFile string

	// AMQP notification sink (optional; log sink is used when URL is empty)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Logging
	LogLevel string
}

// Load reads configuration from the environment with sensible defaults
func Load() *Config {
	// Missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	return &Config{
		UserID:       getEnv("BUDGETBUDDY_USER", "default"),
		SQLiteDBPath: getEnv("BUDGETBUDDY_DB_PATH", "./data/budgetbuddy.db"),
		BudgetsFile:  getEnv("BUDGETBUDDY_BUDGETS_FILE", ""),
		AMQPURL:      getEnv("BUDGETBUDDY_AMQP_URL", ""),
		AMQPExchange: getEnv("BUDGETBUDDY_AMQP_EXCHANGE", "budgetbuddy"),
		AMQPQueue:    getEnv("BUDGETBUDDY_AMQP_QUEUE", "notifications"),
		LogLevel:     getEnv("BUDGETBUDDY_LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.UserID == "" {
		problems = append(problems, "user id cannot be empty")
	}
	if c.SQLiteDBPath == "" {
		problems = append(problems, "sqlite db path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level %q: must be debug, info, warn, or error", c.LogLevel))
	}

	if c.AMQPURL != "" {
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange cannot be empty when an AMQP URL is set")
		}
		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue cannot be empty when an AMQP URL is set")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
