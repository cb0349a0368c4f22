package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"BOT_NAME", "BOT_VERSION", "POLICY_PATH", "POLICY_WATCH_CHANGES",
		"HISTORY_LOG_PATH", "LOG_LEVEL", "LOG_FORMAT", "METRICS_ENABLED", "METRICS_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "CryptoBuddy", cfg.Bot.Name)
	assert.Equal(t, "1.0", cfg.Bot.Version)
	assert.Empty(t, cfg.Policy.Path)
	assert.False(t, cfg.Policy.WatchChanges)
	assert.Empty(t, cfg.History.LogPath)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9090", cfg.Metrics.Addr)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("BOT_NAME", "CoinPal")
	t.Setenv("POLICY_PATH", "/etc/cryptobuddy/policies.cedar")
	t.Setenv("POLICY_WATCH_CHANGES", "true")
	t.Setenv("HISTORY_LOG_PATH", "/tmp/history.jsonl")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ENABLED", "1")

	cfg := Load()

	assert.Equal(t, "CoinPal", cfg.Bot.Name)
	assert.Equal(t, "/etc/cryptobuddy/policies.cedar", cfg.Policy.Path)
	assert.True(t, cfg.Policy.WatchChanges)
	assert.Equal(t, "/tmp/history.jsonl", cfg.History.LogPath)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_BadBoolFallsBack(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "sometimes")
	assert.False(t, Load().Metrics.Enabled)
}
