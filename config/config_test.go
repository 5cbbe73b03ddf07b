package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("GEMINI_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-pro", cfg.Model)
	assert.Equal(t, ":6060", cfg.MetricsAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.PostgresURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-flash")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
}
