package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) RegistrarClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPRegistrarClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return client
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare host and port", "localhost:8080", "http://localhost:8080", false},
		{"explicit scheme", "https://registrar.internal", "https://registrar.internal", false},
		{"trailing slash trimmed", "http://localhost:8080/", "http://localhost:8080", false},
		{"surrounding whitespace", "  localhost:8080  ", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"scheme without host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPRegistrarClient_RejectsEmptyAddress(t *testing.T) {
	_, err := NewHTTPRegistrarClient("", time.Second, logger.Nop())

	assert.Error(t, err)
}

func TestRegister_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "opaque-token", req.Token)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.RegisterResponse{
			ID:           "0195f7a2-1111-7000-8000-000000000001",
			Hostname:     "node-17.fleet.internal",
			RegisteredAt: "2026-03-14T09:26:53Z",
		})
	})

	registered, err := client.Register(context.Background(), "opaque-token")

	require.NoError(t, err)
	assert.Equal(t, "node-17.fleet.internal", registered.Hostname)
	assert.NotEmpty(t, registered.ID)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"malformed token", http.StatusBadRequest, ErrBadRequest},
		{"expired token", http.StatusUnauthorized, ErrUnauthorized},
		{"undecryptable token", http.StatusUnprocessableEntity, ErrUnprocessable},
		{"duplicate hostname", http.StatusConflict, ErrConflict},
		{"server failure", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.name, tt.status)
			})

			_, err := client.Register(context.Background(), "whatever")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIssueToken_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/token", r.URL.Path)

		var spec models.IssueSpec
		require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
		assert.Equal(t, "node-17.fleet.internal", spec.Hostname)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.IssuedToken{
			Token:     "opaque",
			PublicKey: "ssh-ed25519 AAAA test",
		})
	})

	issued, err := client.IssueToken(context.Background(), models.IssueSpec{
		Hostname:    "node-17.fleet.internal",
		SSHPort:     22,
		SSHUsername: "deploy",
	})

	require.NoError(t, err)
	assert.Equal(t, "opaque", issued.Token)
}

func TestServers_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/servers", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Server{
			{ID: "a", Hostname: "node-1"},
		})
	})

	servers, err := client.Servers(context.Background())

	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, "node-1", servers[0].Hostname)
}

func TestServers_DecodeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.Servers(context.Background())

	assert.Error(t, err)
}
