package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_TOKEN_TTL", "20m")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("STORAGE_DSN", "/var/lib/signalsurge/registry.db")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("CONFIG", "/etc/signalsurge/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 20*time.Minute, cfg.App.TokenTTL)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/lib/signalsurge/registry.db", cfg.Storage.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/etc/signalsurge/config.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Zero(t, cfg.App.TokenTTL)
	assert.Empty(t, cfg.Storage.DSN)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidDurationFails(t *testing.T) {
	t.Setenv("APP_TOKEN_TTL", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
