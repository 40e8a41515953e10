package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envUsername, "")
	t.Setenv(envWebhook, "")

	cfg, warnings := Load()

	assert.Equal(t, defaultUsername, cfg.Username)
	assert.Empty(t, cfg.WebhookURL)
	assert.Equal(t, defaultDatabase, cfg.DatabasePath)
	assert.Len(t, warnings, 2)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(envUsername, "  tester  ")
	t.Setenv(envWebhook, "https://example.com/hook")
	t.Setenv(envDatabase, "/tmp/sessions.db")
	t.Setenv(envLogFile, "/tmp/workwatch.log")

	cfg, warnings := Load()

	assert.Equal(t, "tester", cfg.Username, "username is trimmed")
	assert.Equal(t, "https://example.com/hook", cfg.WebhookURL)
	assert.Equal(t, "/tmp/sessions.db", cfg.DatabasePath)
	assert.Equal(t, "/tmp/workwatch.log", cfg.LogFile)
	assert.Empty(t, warnings)
}

func TestEmptyDatabaseDisablesArchive(t *testing.T) {
	t.Setenv(envUsername, "tester")
	t.Setenv(envWebhook, "https://example.com/hook")
	t.Setenv(envDatabase, "")

	cfg, _ := Load()
	assert.Empty(t, cfg.DatabasePath)
}
