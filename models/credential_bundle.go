// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors returned by [CredentialBundle.Validate]. Callers should
// match them with [errors.Is].
var (
	ErrNoHostname      = errors.New("hostname is required")
	ErrInvalidSSHPort  = errors.New("ssh port must be in range 1-65535")
	ErrNoSSHUsername   = errors.New("ssh username is required")
	ErrBadPublicKey    = errors.New("public key must be a single non-empty line")
	ErrNoPrivateKey    = errors.New("private key is required")
	ErrNoGeneratedTime = errors.New("generation timestamp is required")
)

// CredentialBundle is the set of server-access fields transported inside a
// registration token: enough for the control plane to SSH into a freshly
// provisioned node and join it to the cluster.
//
// The bundle is an immutable value object. It is serialized into the token's
// encrypted envelope by [internal/token.Codec] and never persisted as a whole;
// in particular PrivateKeyPEM exists only inside tokens and in the memory of
// the producing and consuming processes.
type CredentialBundle struct {
	// Hostname is the address the consumer will SSH to. May be an IP or a
	// resolvable name.
	Hostname string `json:"hostname"`

	// SSHPort is the TCP port of the node's SSH daemon (1-65535).
	SSHPort int `json:"sshPort"`

	// SSHUsername is the account the keypair is authorized for.
	SSHUsername string `json:"sshUsername"`

	// PublicKey is the OpenSSH authorized_keys line for the generated
	// Ed25519 key. Always a single line without a trailing newline.
	PublicKey string `json:"publicKey"`

	// PrivateKeyPEM is the matching private key in OpenSSH PEM format.
	// Multi-line; real line breaks are preserved through a token round-trip.
	PrivateKeyPEM string `json:"privateKeyPem"`

	// GeneratedAt is the UTC creation time of the bundle, second precision.
	// Consumers use it to enforce the advisory token validity window.
	GeneratedAt time.Time `json:"generatedAtUtc"`
}

// Validate reports whether the bundle is complete and internally consistent.
// It returns the first violated rule as one of the sentinel errors above.
func (b CredentialBundle) Validate() error {
	if b.Hostname == "" {
		return ErrNoHostname
	}
	if b.SSHPort < 1 || b.SSHPort > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidSSHPort, b.SSHPort)
	}
	if b.SSHUsername == "" {
		return ErrNoSSHUsername
	}
	if b.PublicKey == "" || strings.ContainsAny(b.PublicKey, "\r\n") {
		return ErrBadPublicKey
	}
	if b.PrivateKeyPEM == "" {
		return ErrNoPrivateKey
	}
	if b.GeneratedAt.IsZero() {
		return ErrNoGeneratedTime
	}

	return nil
}
