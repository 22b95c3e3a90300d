package token

import "errors"

// Sentinel errors returned by [Codec]. Callers should match them with
// [errors.Is]; the wrapped detail never contains key material.
var (
	// ErrEncoding is returned when a credential bundle cannot be turned into
	// a token: the bundle fails validation, serialization fails, or the
	// secure random source is unavailable.
	ErrEncoding = errors.New("credential bundle cannot be encoded")

	// ErrMalformedToken is returned for structural violations of the token
	// format: wrong length, bad position suffix, truncated key region,
	// invalid base64, or a missing envelope marker.
	ErrMalformedToken = errors.New("malformed registration token")

	// ErrDecryption is returned when the token parses structurally but the
	// ciphertext does not decrypt to validly padded plaintext, which almost
	// always means a tampered token or a corrupted key region.
	ErrDecryption = errors.New("registration token decryption failed")

	// ErrMalformedPayload is returned when decryption succeeds but the
	// plaintext is not a valid credential bundle.
	ErrMalformedPayload = errors.New("decrypted payload is not a valid credential bundle")
)
