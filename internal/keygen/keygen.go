// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

// Package keygen generates the Ed25519 SSH keypairs whose material becomes a
// credential bundle's publicKey and privateKeyPem fields.
package keygen

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"
)

// KeyPair holds a freshly generated SSH keypair in the wire shapes the
// credential bundle expects.
type KeyPair struct {
	// PublicKey is the authorized_keys line for the key: a single line,
	// no trailing newline.
	PublicKey string

	// PrivateKeyPEM is the private key in OpenSSH PEM format. Multi-line,
	// no trailing newline.
	PrivateKeyPEM string
}

// NewEd25519 generates an Ed25519 keypair from the OS CSPRNG. The comment,
// when non-empty, is attached to both the authorized_keys line and the
// private key block.
func NewEd25519(comment string) (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate ed25519 key: %w", err)
	}

	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return KeyPair{}, fmt.Errorf("convert public key: %w", err)
	}

	line := strings.TrimSuffix(string(ssh.MarshalAuthorizedKey(sshPub)), "\n")
	if comment != "" {
		line += " " + comment
	}

	block, err := ssh.MarshalPrivateKey(priv, comment)
	if err != nil {
		return KeyPair{}, fmt.Errorf("marshal private key: %w", err)
	}

	return KeyPair{
		PublicKey:     line,
		PrivateKeyPEM: strings.TrimSuffix(string(pem.EncodeToMemory(block)), "\n"),
	}, nil
}
