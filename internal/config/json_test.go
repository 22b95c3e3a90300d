package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParseJSON_PopulatesFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"token_ttl": "30m", "version": "2.0.0"},
		"storage": {"dsn": "registry.db"},
		"server": {"http_address": "0.0.0.0:8081", "request_timeout": "1m", "shutdown_timeout": "15s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.App.TokenTTL)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "registry.db", cfg.Storage.DSN)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also arrive as raw nanosecond numbers.
	path := writeTempJSON(t, `{"app": {"token_ttl": 900000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.App.TokenTTL)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}
