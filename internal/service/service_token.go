// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/keygen"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/token"
	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

// defaultSSHPort is used when an issue spec leaves the port unset.
const defaultSSHPort = 22

// tokenIssueService is the private implementation of [TokenIssuer].
type tokenIssueService struct {
	codec  token.Codec
	keygen func(comment string) (keygen.KeyPair, error)
	clock  func() time.Time
	logger *logger.Logger
}

// NewTokenIssueService constructs a [TokenIssuer] over codec.
func NewTokenIssueService(codec token.Codec, log *logger.Logger) TokenIssuer {
	return &tokenIssueService{
		codec:  codec,
		keygen: keygen.NewEd25519,
		clock:  time.Now,
		logger: log,
	}
}

// Issue implements [TokenIssuer].
func (s *tokenIssueService) Issue(ctx context.Context, spec models.IssueSpec) (models.IssuedToken, error) {
	if spec.SSHPort == 0 {
		spec.SSHPort = defaultSSHPort
	}
	if spec.Hostname == "" {
		return models.IssuedToken{}, fmt.Errorf("%w: hostname is required", ErrInvalidDataProvided)
	}
	if spec.SSHUsername == "" {
		return models.IssuedToken{}, fmt.Errorf("%w: ssh username is required", ErrInvalidDataProvided)
	}
	if spec.SSHPort < 1 || spec.SSHPort > 65535 {
		return models.IssuedToken{}, fmt.Errorf("%w: ssh port %d out of range", ErrInvalidDataProvided, spec.SSHPort)
	}

	keyPair, err := s.keygen(spec.SSHUsername + "@" + spec.Hostname)
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("generate keypair: %w", err)
	}

	// The wire format carries second precision only; truncating here keeps
	// the issued metadata identical to what a consumer will decode.
	generatedAt := s.clock().UTC().Truncate(time.Second)

	bundle := models.CredentialBundle{
		Hostname:      spec.Hostname,
		SSHPort:       spec.SSHPort,
		SSHUsername:   spec.SSHUsername,
		PublicKey:     keyPair.PublicKey,
		PrivateKeyPEM: keyPair.PrivateKeyPEM,
		GeneratedAt:   generatedAt,
	}

	tok, err := s.codec.Encode(bundle)
	if err != nil {
		return models.IssuedToken{}, err
	}

	s.logger.Info().
		Str("hostname", spec.Hostname).
		Int("ssh_port", spec.SSHPort).
		Time("generated_at", generatedAt).
		Msg("registration token issued")

	return models.IssuedToken{
		Token:       tok,
		PublicKey:   keyPair.PublicKey,
		GeneratedAt: generatedAt,
		ExpiresAt:   generatedAt.Add(models.TokenValidityWindow),
	}, nil
}
