package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LEADBOT_TENANT_ID", "")
	t.Setenv("LEADBOT_REQUEST_TIMEOUT", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("TENANTS_FILE", "")
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.TenantID)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "tenants.json", cfg.TenantsFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEADBOT_TENANT_ID", "  tenant-42  ")
	t.Setenv("LEADBOT_API_BASE_URL", "http://localhost:5000")
	t.Setenv("LEADBOT_REQUEST_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "TEXT")

	cfg := Load()

	assert.Equal(t, "tenant-42", cfg.TenantID)
	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("LEADBOT_REQUEST_TIMEOUT", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
