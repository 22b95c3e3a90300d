package models

// RegisterRequest is the body of POST /api/register: a single opaque
// registration token previously produced by the token issuer.
type RegisterRequest struct {
	Token string `json:"token"`
}

// RegisterResponse is returned when a registration token was accepted
// and the server it describes was added to the registry.
type RegisterResponse struct {
	// ID is the registry identifier assigned to the new server.
	ID string `json:"id"`

	// Hostname echoes the hostname recovered from the token.
	Hostname string `json:"hostname"`

	// RegisteredAt is the moment the server was persisted, RFC 3339 UTC.
	RegisteredAt string `json:"registeredAtUtc"`
}
