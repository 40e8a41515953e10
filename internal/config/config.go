package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultUsername = "Anonymous"
	defaultDatabase = "workwatch.db"

	envUsername = "WORKWATCH_USERNAME"
	envWebhook  = "WORKWATCH_WEBHOOK"
	envDatabase = "WORKWATCH_DB"
	envLogFile  = "WORKWATCH_LOG"
)

// Config is built once at startup and passed down; nothing reads the
// environment after this.
type Config struct {
	Username     string
	WebhookURL   string
	DatabasePath string // empty disables the session archive
	LogFile      string // empty disables file logging
}

// Load reads an optional .env file and then the environment. Missing
// values degrade with a warning instead of failing startup.
func Load() (Config, []string) {
	_ = godotenv.Load()

	var warnings []string
	cfg := Config{
		DatabasePath: defaultDatabase,
	}

	cfg.Username = strings.TrimSpace(os.Getenv(envUsername))
	if cfg.Username == "" {
		cfg.Username = defaultUsername
		warnings = append(warnings, fmt.Sprintf(
			"%s not found! Will default to %s.", envUsername, defaultUsername))
	}

	cfg.WebhookURL = strings.TrimSpace(os.Getenv(envWebhook))
	if cfg.WebhookURL == "" {
		warnings = append(warnings, fmt.Sprintf(
			"%s not found! Clock events will not be posted anywhere.", envWebhook))
	}

	if path, ok := os.LookupEnv(envDatabase); ok {
		cfg.DatabasePath = strings.TrimSpace(path)
	}

	cfg.LogFile = strings.TrimSpace(os.Getenv(envLogFile))

	return cfg, warnings
}
