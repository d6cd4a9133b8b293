package config

import (
	"os"
	"strings"
	"time"
)

// Config holds widget runtime configuration.
type Config struct {
	Env       string
	LogLevel  string
	LogFormat string

	// TenantID identifies which backend tenant the widget talks to. The
	// embedding surface supplies it; when empty the widget never activates.
	TenantID string

	// APIBaseURL overrides the compiled-in backend base URL. Intended for
	// local development against the devserver, not for host pages.
	APIBaseURL string

	RequestTimeout time.Duration

	// Devserver settings.
	Port        string
	TenantsFile string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "json")),
		TenantID:       strings.TrimSpace(getEnv("LEADBOT_TENANT_ID", "")),
		APIBaseURL:     getEnv("LEADBOT_API_BASE_URL", ""),
		RequestTimeout: getEnvAsDuration("LEADBOT_REQUEST_TIMEOUT", 10*time.Second),
		Port:           getEnv("PORT", "5000"),
		TenantsFile:    getEnv("TENANTS_FILE", "tenants.json"),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
