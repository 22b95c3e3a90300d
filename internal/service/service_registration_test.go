package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/store"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/token"
	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

// fakeServerRepository is an in-memory stand-in for the sqlite repository.
type fakeServerRepository struct {
	saved   []models.Server
	saveErr error
}

func (f *fakeServerRepository) Save(_ context.Context, server models.Server) (models.Server, error) {
	if f.saveErr != nil {
		return models.Server{}, f.saveErr
	}
	for _, s := range f.saved {
		if s.Hostname == server.Hostname {
			return models.Server{}, fmt.Errorf("%w: %q", store.ErrHostnameAlreadyRegistered, server.Hostname)
		}
	}
	f.saved = append(f.saved, server)
	return server, nil
}

func (f *fakeServerRepository) FindByHostname(_ context.Context, hostname string) (models.Server, error) {
	for _, s := range f.saved {
		if s.Hostname == hostname {
			return s, nil
		}
	}
	return models.Server{}, store.ErrServerNotFound
}

func (f *fakeServerRepository) List(_ context.Context) ([]models.Server, error) {
	return f.saved, nil
}

func issueTestToken(t *testing.T, generatedAt time.Time) string {
	t.Helper()

	svc := NewTokenIssueService(token.NewCodec(), logger.Nop()).(*tokenIssueService)
	svc.clock = func() time.Time { return generatedAt }

	issued, err := svc.Issue(context.Background(), models.IssueSpec{
		Hostname:    "10.0.0.5",
		SSHPort:     22,
		SSHUsername: "deploy",
	})
	require.NoError(t, err)

	return issued.Token
}

func newTestRegistrar(repo store.ServerRepository, now time.Time) *registrationService {
	svc := NewRegistrationService(token.NewCodec(), repo, 15*time.Minute, logger.Nop()).(*registrationService)
	svc.clock = func() time.Time { return now }
	return svc
}

func TestRegister_AcceptsFreshToken(t *testing.T) {
	generatedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tok := issueTestToken(t, generatedAt)

	repo := &fakeServerRepository{}
	svc := newTestRegistrar(repo, generatedAt.Add(5*time.Minute))

	server, err := svc.Register(context.Background(), tok)
	require.NoError(t, err)

	assert.NotEmpty(t, server.ID)
	assert.Equal(t, "10.0.0.5", server.Hostname)
	assert.Equal(t, 22, server.SSHPort)
	assert.Equal(t, "deploy", server.SSHUsername)
	assert.NotEmpty(t, server.PublicKey)
	assert.True(t, server.GeneratedAt.Equal(generatedAt))
	require.Len(t, repo.saved, 1)
}

func TestRegister_RejectsExpiredToken(t *testing.T) {
	generatedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tok := issueTestToken(t, generatedAt)

	repo := &fakeServerRepository{}
	svc := newTestRegistrar(repo, generatedAt.Add(16*time.Minute))

	_, err := svc.Register(context.Background(), tok)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
	assert.Empty(t, repo.saved)
}

func TestRegister_AcceptsTokenAtWindowEdge(t *testing.T) {
	generatedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tok := issueTestToken(t, generatedAt)

	repo := &fakeServerRepository{}
	svc := newTestRegistrar(repo, generatedAt.Add(15*time.Minute))

	_, err := svc.Register(context.Background(), tok)
	assert.NoError(t, err)
}

func TestRegister_PassesThroughCodecErrors(t *testing.T) {
	svc := newTestRegistrar(&fakeServerRepository{}, time.Now())

	_, err := svc.Register(context.Background(), "short")
	assert.ErrorIs(t, err, token.ErrMalformedToken)
}

func TestRegister_PropagatesRepositoryErrors(t *testing.T) {
	generatedAt := time.Now().UTC()
	tok := issueTestToken(t, generatedAt)

	repo := &fakeServerRepository{saveErr: errors.New("disk full")}
	svc := newTestRegistrar(repo, generatedAt)

	_, err := svc.Register(context.Background(), tok)
	assert.Error(t, err)
}

func TestServers_ListsRegistered(t *testing.T) {
	repo := &fakeServerRepository{saved: []models.Server{{Hostname: "a"}, {Hostname: "b"}}}
	svc := newTestRegistrar(repo, time.Now())

	servers, err := svc.Servers(context.Background())
	require.NoError(t, err)
	assert.Len(t, servers, 2)
}
