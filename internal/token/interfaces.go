package token

import "github.com/johan-ferguson-ai/signalsurge-k8s/models"

// Codec converts credential bundles to and from registration token strings.
//
// Both operations are pure, stateless transformations: each call works only
// on its own input and locally generated randomness, so a single Codec is
// safe for concurrent use without coordination.
//
// The codec does not enforce the token's advisory validity window; that is a
// policy decision for the consumer, which has the bundle's GeneratedAt field
// available after a successful decode.
type Codec interface {
	// Encode packs the bundle into a single opaque token string. The
	// one-time encryption key is generated inside the call, embedded into
	// the token, and never retained afterwards.
	//
	// Fails with [ErrEncoding] if the bundle is invalid, serialization
	// fails, or the secure random source is unavailable.
	Encode(bundle models.CredentialBundle) (string, error)

	// Decode recovers the credential bundle from a token string produced by
	// Encode. Structural violations fail with [ErrMalformedToken], a token
	// that parses but does not decrypt fails with [ErrDecryption], and a
	// decrypted payload that is not a valid bundle fails with
	// [ErrMalformedPayload]. Nothing is retried; every failure is terminal
	// for the attempt.
	Decode(token string) (models.CredentialBundle, error)
}
