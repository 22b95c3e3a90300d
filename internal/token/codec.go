// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

// Package token implements the registration token codec: it packs a server's
// connection credentials into a single opaque, copy-pasteable string and
// recovers them on the consuming side.
//
// Wire format, outermost layer first:
//
//	BEFORE ‖ KEY (64 hex chars) ‖ AFTER ‖ LETTER DIGIT "=="
//
// where BEFORE+AFTER is the base64 (padding stripped) of an AES-256-CBC
// envelope keyed via PBKDF2-HMAC-SHA256 from KEY, and LETTER/DIGIT encode
// the splice position of KEY inside the base64 string. The splice is an
// obfuscation layer, not cryptographic defense in depth.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

// kdfIterations is the fixed PBKDF2 iteration count of the scheme. Both
// sides must agree on it, so it is not configurable.
const kdfIterations = 100_000

const oneTimeKeyBytes = 32

// generatedAtLayout renders the bundle timestamp in UTC with second
// precision and a literal Z suffix. The Z is literal rather than the Z07:00
// layout verb, so parsing rejects offset timestamps like "+02:00".
const generatedAtLayout = "2006-01-02T15:04:05Z"

// payload is the wire form of the credential bundle inside the encrypted
// envelope. encoding/json renders the private key's line breaks as literal
// \n escape pairs in transit and restores them on parse.
type payload struct {
	Hostname       string `json:"hostname"`
	SSHPort        int    `json:"sshPort"`
	SSHUsername    string `json:"sshUsername"`
	PublicKey      string `json:"publicKey"`
	PrivateKeyPEM  string `json:"privateKeyPem"`
	GeneratedAtUTC string `json:"generatedAtUtc"`
}

// codec is the private implementation of [Codec].
type codec struct{}

// NewCodec constructs a [Codec] with the scheme's fixed parameters:
// AES-256-CBC, PBKDF2-HMAC-SHA256 at 100,000 iterations, a 32-byte one-time
// key, and a splice position in [10, 99].
func NewCodec() Codec {
	return &codec{}
}

// Encode implements [Codec].
func (c *codec) Encode(bundle models.CredentialBundle) (string, error) {
	pos, err := randomSplicePos()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	return c.encodeAt(bundle, pos)
}

// encodeAt performs the full encode pipeline with a caller-chosen splice
// position.
func (c *codec) encodeAt(bundle models.CredentialBundle, pos int) (string, error) {
	if err := bundle.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	body, err := json.Marshal(payload{
		Hostname:       bundle.Hostname,
		SSHPort:        bundle.SSHPort,
		SSHUsername:    bundle.SSHUsername,
		PublicKey:      bundle.PublicKey,
		PrivateKeyPEM:  bundle.PrivateKeyPEM,
		GeneratedAtUTC: bundle.GeneratedAt.UTC().Format(generatedAtLayout),
	})
	if err != nil {
		return "", fmt.Errorf("%w: serialize payload: %v", ErrEncoding, err)
	}

	key, err := newOneTimeKey()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	blob, err := sealEnvelope(body, key, kdfIterations)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	// Trailing '=' padding is redundant: it is fully determined by the
	// base64 length mod 4 and is reconstructed on decode.
	cipherStr := strings.TrimRight(base64.StdEncoding.EncodeToString(blob), "=")

	tok, err := spliceKey(cipherStr, key, pos).assemble()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	return tok, nil
}

// Decode implements [Codec].
func (c *codec) Decode(tok string) (models.CredentialBundle, error) {
	r, err := splitToken(tok)
	if err != nil {
		return models.CredentialBundle{}, err
	}

	cipherStr, err := repadBase64(r.cipher())
	if err != nil {
		return models.CredentialBundle{}, err
	}

	// Strict rejects non-zero trailing padding bits, so a padded length
	// admits exactly one encoding. Encode always emits zero trailing bits;
	// anything else is a tampered or hand-built token.
	blob, err := base64.StdEncoding.Strict().DecodeString(cipherStr)
	if err != nil {
		return models.CredentialBundle{}, fmt.Errorf("%w: invalid base64 ciphertext", ErrMalformedToken)
	}

	body, err := openEnvelope(blob, r.key, kdfIterations)
	if err != nil {
		return models.CredentialBundle{}, err
	}

	return parsePayload(body)
}

// newOneTimeKey draws 32 bytes from the OS CSPRNG and returns them as a
// 64-character lowercase hex string. The hex string, not its decoded bytes,
// is the passphrase input to key derivation.
func newOneTimeKey() (string, error) {
	raw := make([]byte, oneTimeKeyBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate one-time key: %w", err)
	}

	return hex.EncodeToString(raw), nil
}

// repadBase64 restores the '=' padding stripped at encode time. A length
// remainder of 1 cannot come from any valid base64 string.
func repadBase64(s string) (string, error) {
	switch len(s) % 4 {
	case 0:
		return s, nil
	case 2:
		return s + "==", nil
	case 3:
		return s + "=", nil
	}

	return "", fmt.Errorf("%w: ciphertext length %d has no valid base64 padding", ErrMalformedToken, len(s))
}

// parsePayload turns decrypted plaintext back into a credential bundle,
// validating required fields and the port range.
func parsePayload(body []byte) (models.CredentialBundle, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return models.CredentialBundle{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	generatedAt, err := time.Parse(generatedAtLayout, p.GeneratedAtUTC)
	if err != nil {
		return models.CredentialBundle{}, fmt.Errorf("%w: invalid generatedAtUtc: %v", ErrMalformedPayload, err)
	}

	bundle := models.CredentialBundle{
		Hostname:      p.Hostname,
		SSHPort:       p.SSHPort,
		SSHUsername:   p.SSHUsername,
		PublicKey:     p.PublicKey,
		PrivateKeyPEM: p.PrivateKeyPEM,
		GeneratedAt:   generatedAt.UTC(),
	}
	if err := bundle.Validate(); err != nil {
		return models.CredentialBundle{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return bundle, nil
}
