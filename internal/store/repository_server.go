package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

var serverColumns = []string{"id", "hostname", "ssh_port", "ssh_username", "public_key", "generated_at", "registered_at"}

// serverRepository is the sqlite implementation of [ServerRepository].
type serverRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewServerRepository constructs a [ServerRepository] backed by db.
func NewServerRepository(db *DB, log *logger.Logger) ServerRepository {
	return &serverRepository{db: db, logger: log}
}

// Save implements [ServerRepository].
func (r *serverRepository) Save(ctx context.Context, server models.Server) (models.Server, error) {
	query, args, err := sq.Insert("servers").
		Columns(serverColumns...).
		Values(server.ID, server.Hostname, server.SSHPort, server.SSHUsername, server.PublicKey, server.GeneratedAt, server.RegisteredAt).
		ToSql()
	if err != nil {
		return models.Server{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return models.Server{}, fmt.Errorf("%w: %q", ErrHostnameAlreadyRegistered, server.Hostname)
		}

		r.logger.Err(err).Str("hostname", server.Hostname).Msg("error inserting server record")
		return models.Server{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return server, nil
}

// FindByHostname implements [ServerRepository].
func (r *serverRepository) FindByHostname(ctx context.Context, hostname string) (models.Server, error) {
	query, args, err := sq.Select(serverColumns...).
		From("servers").
		Where(sq.Eq{"hostname": hostname}).
		ToSql()
	if err != nil {
		return models.Server{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var server models.Server
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&server.ID, &server.Hostname, &server.SSHPort, &server.SSHUsername, &server.PublicKey, &server.GeneratedAt, &server.RegisteredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Server{}, fmt.Errorf("%w: %q", ErrServerNotFound, hostname)
	}
	if err != nil {
		return models.Server{}, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return server, nil
}

// List implements [ServerRepository].
func (r *serverRepository) List(ctx context.Context) ([]models.Server, error) {
	query, args, err := sq.Select(serverColumns...).
		From("servers").
		OrderBy("registered_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	servers := make([]models.Server, 0)
	for rows.Next() {
		var server models.Server
		if err = rows.Scan(&server.ID, &server.Hostname, &server.SSHPort, &server.SSHUsername, &server.PublicKey, &server.GeneratedAt, &server.RegisteredAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		servers = append(servers, server)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return servers, nil
}
