package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Bot     BotConfig
	Policy  PolicyConfig
	History HistoryConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

// BotConfig holds the assistant identity shown to users
type BotConfig struct {
	Name    string
	Version string
}

// PolicyConfig holds response policy loading settings
type PolicyConfig struct {
	Path         string // empty uses the embedded policy set
	WatchChanges bool
}

// HistoryConfig holds conversation log settings
type HistoryConfig struct {
	LogPath string // empty keeps history in memory only
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // console, json
}

// MetricsConfig holds metrics/monitoring settings
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Bot: BotConfig{
			Name:    getEnv("BOT_NAME", "CryptoBuddy"),
			Version: getEnv("BOT_VERSION", "1.0"),
		},
		Policy: PolicyConfig{
			Path:         getEnv("POLICY_PATH", ""),
			WatchChanges: getEnvBool("POLICY_WATCH_CHANGES", false),
		},
		History: HistoryConfig{
			LogPath: getEnv("HISTORY_LOG_PATH", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", false),
			Addr:    getEnv("METRICS_ADDR", "127.0.0.1:9090"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
