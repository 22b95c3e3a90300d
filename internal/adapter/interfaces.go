// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

// Package adapter provides transport-layer abstractions for communicating
// with the registrar server.
//
// The primary abstraction is [RegistrarClient], which decouples callers (the
// tokenctl CLI in particular) from the underlying protocol. The package ships
// an HTTP/REST implementation ([NewHTTPRegistrarClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

// RegistrarClient defines transport-agnostic communication with the registrar
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type RegistrarClient interface {
	// Register submits a registration token to the server. Returns the
	// registry record created for the token, or a mapped sentinel error:
	// [ErrBadRequest] for malformed tokens, [ErrUnprocessable] for tokens
	// that fail decryption or carry a bad payload, [ErrUnauthorized] for
	// expired tokens, and [ErrConflict] for already-registered hostnames.
	Register(ctx context.Context, token string) (models.RegisterResponse, error)

	// IssueToken asks the server to mint a registration token for spec.
	IssueToken(ctx context.Context, spec models.IssueSpec) (models.IssuedToken, error)

	// Servers lists the servers currently in the registry.
	Servers(ctx context.Context) ([]models.Server, error)
}
