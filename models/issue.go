package models

import "time"

// TokenValidityWindow is the documented advisory validity of a registration
// token, measured from its generation timestamp. The token format itself
// carries no expiry; consumers are expected to enforce this window.
const TokenValidityWindow = 15 * time.Minute

// IssueSpec is the caller-supplied part of a token issue request: where the
// consumer will connect and as whom. The keypair and timestamp are filled in
// by the issuing service.
type IssueSpec struct {
	Hostname    string `json:"hostname"`
	SSHPort     int    `json:"sshPort"`
	SSHUsername string `json:"sshUsername"`
}

// IssuedToken is the result of issuing a registration token.
type IssuedToken struct {
	// Token is the opaque string to hand to the consumer.
	Token string `json:"token"`

	// PublicKey is the authorized_keys line of the generated keypair, so
	// the producer can install it on the target node.
	PublicKey string `json:"publicKey"`

	// GeneratedAt is when the bundle inside the token was stamped.
	GeneratedAt time.Time `json:"generatedAtUtc"`

	// ExpiresAt is the advisory end of the token's validity window. The
	// token itself carries no expiry; consumers decide whether to honor it.
	ExpiresAt time.Time `json:"expiresAt"`
}
