package store

import (
	"context"

	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

// ServerRepository persists and queries the registrar's records of
// successfully registered servers.
type ServerRepository interface {
	// Save inserts a new server record. Returns
	// [ErrHostnameAlreadyRegistered] if a record with the same hostname
	// already exists.
	Save(ctx context.Context, server models.Server) (models.Server, error)

	// FindByHostname returns the record for hostname, or
	// [ErrServerNotFound].
	FindByHostname(ctx context.Context, hostname string) (models.Server, error)

	// List returns all server records ordered by registration time.
	List(ctx context.Context) ([]models.Server, error)
}
