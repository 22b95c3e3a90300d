// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

package models

import "time"

// Server is the registrar's record of a node whose registration token was
// accepted. It carries everything from the decoded [CredentialBundle] except
// the private key, which is never written to storage.
type Server struct {
	// ID is a UUID assigned by the registrar on first registration.
	ID string `json:"id"`

	// Hostname, SSHPort and SSHUsername mirror the decoded bundle fields.
	Hostname    string `json:"hostname"`
	SSHPort     int    `json:"sshPort"`
	SSHUsername string `json:"sshUsername"`

	// PublicKey is the node's OpenSSH public key line, kept so operators can
	// audit which key was authorized for the node.
	PublicKey string `json:"publicKey"`

	// GeneratedAt is the bundle's creation time carried over from the token.
	GeneratedAt time.Time `json:"generatedAtUtc"`

	// RegisteredAt is when the registrar accepted the token.
	RegisteredAt time.Time `json:"registeredAt"`
}
