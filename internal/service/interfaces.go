package service

import (
	"context"

	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

// TokenIssuer produces registration tokens for new servers: it generates the
// SSH keypair, stamps the bundle, and runs it through the codec.
type TokenIssuer interface {
	// Issue creates a fresh credential bundle for spec and encodes it.
	// Returns [ErrInvalidDataProvided] if the spec is incomplete.
	Issue(ctx context.Context, spec models.IssueSpec) (models.IssuedToken, error)
}

// Registrar consumes registration tokens: it decodes them, enforces the
// advisory validity window, and records accepted servers.
type Registrar interface {
	// Register decodes tok, verifies it is still inside the validity
	// window, and persists a server record. Codec failures pass through
	// with their sentinel kinds; an out-of-window token fails with
	// [ErrTokenIsExpired].
	Register(ctx context.Context, tok string) (models.Server, error)

	// Servers lists all registered servers.
	Servers(ctx context.Context) ([]models.Server, error)
}
