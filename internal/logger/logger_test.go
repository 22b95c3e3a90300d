package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureEntry redirects l to a buffer, emits one info message, and returns
// the decoded JSON log entry.
func captureEntry(t *testing.T, l *Logger, msg string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Info().Msg(msg)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("registrar"))
}

// Every entry from a role logger must carry the role field so registrar and
// tokenctl output can be told apart in aggregated logs.
func TestNewLogger_RoleField(t *testing.T) {
	entry := captureEntry(t, NewLogger("tokenctl"), "issuing token")

	assert.Equal(t, "tokenctl", entry["role"])
}

func TestNewLogger_ContainsTimestamp(t *testing.T) {
	entry := captureEntry(t, NewLogger("registrar"), "listening")

	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// NewLogger renames the caller field to "func" and opens the global level to
// Debug; both are zerolog package-level side effects.
func TestNewLogger_GlobalSideEffects(t *testing.T) {
	NewLogger("registrar")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := NewLogger("registrar")
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

// A child derived for a single request inherits the parent's role field, so
// per-request fields like trace_id stack on top of it.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	parent := NewLogger("registrar")
	child := parent.GetChildLogger()

	entry := captureEntry(t, child, "child message")

	assert.Equal(t, "registrar", entry["role"])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "trace-123").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-123", entry["trace_id"])
}

func TestFromRequest_NotNil(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	require.NotNil(t, FromRequest(req))
}

// The trace middleware attaches a request-scoped logger to the context;
// FromRequest is how handlers get it back.
func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "trace-456").Logger()

	req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)

	l.Info().Msg("from request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-456", entry["trace_id"])
}
