// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/store"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/token"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/utils"
	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

// registrationService is the private implementation of [Registrar].
type registrationService struct {
	codec    token.Codec
	servers  store.ServerRepository
	tokenTTL time.Duration
	uuid     *utils.UUIDGenerator
	clock    func() time.Time
	logger   *logger.Logger
}

// NewRegistrationService constructs a [Registrar] that accepts tokens no
// older than tokenTTL and records accepted servers in servers.
func NewRegistrationService(codec token.Codec, servers store.ServerRepository, tokenTTL time.Duration, log *logger.Logger) Registrar {
	return &registrationService{
		codec:    codec,
		servers:  servers,
		tokenTTL: tokenTTL,
		uuid:     utils.NewUUIDGenerator(),
		clock:    time.Now,
		logger:   log,
	}
}

// Register implements [Registrar].
func (s *registrationService) Register(ctx context.Context, tok string) (models.Server, error) {
	bundle, err := s.codec.Decode(tok)
	if err != nil {
		return models.Server{}, err
	}

	now := s.clock().UTC()
	if age := now.Sub(bundle.GeneratedAt); age > s.tokenTTL {
		return models.Server{}, fmt.Errorf("%w: generated %s ago, window is %s",
			ErrTokenIsExpired, age.Round(time.Second), s.tokenTTL)
	}

	server := models.Server{
		ID:           s.uuid.Generate(),
		Hostname:     bundle.Hostname,
		SSHPort:      bundle.SSHPort,
		SSHUsername:  bundle.SSHUsername,
		PublicKey:    bundle.PublicKey,
		GeneratedAt:  bundle.GeneratedAt,
		RegisteredAt: now,
	}

	saved, err := s.servers.Save(ctx, server)
	if err != nil {
		return models.Server{}, err
	}

	s.logger.Info().
		Str("server_id", saved.ID).
		Str("hostname", saved.Hostname).
		Msg("server registered")

	return saved, nil
}

// Servers implements [Registrar].
func (s *registrationService) Servers(ctx context.Context) ([]models.Server, error) {
	return s.servers.List(ctx)
}
