// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/config"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/migrations"
)

// DB wraps the sqlite connection pool used by the registrar's repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSqlite opens (or creates) the sqlite database at cfg.DSN, pings
// it, and applies the embedded schema migrations.
func NewConnectSqlite(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSqlite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// sqlite allows a single writer; more connections only add lock churn.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSqlite").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewConnectSqlite").Msg("error applying migrations")
		return nil, err
	}

	log.Info().Str("func", "NewConnectSqlite").Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}
