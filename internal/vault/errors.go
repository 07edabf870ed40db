package vault

import "errors"

// Sentinel errors for the secrets-manager client. They are propagated to
// callers unchanged so the upstream failure class survives the adapter and
// service layers.
var (
	// ErrUnauthorized is returned when the vault rejects the caller's
	// access token (HTTP 401/403).
	ErrUnauthorized = errors.New("vault rejected the access token")

	// ErrSecretNotFound is returned when the referenced secret does not
	// exist in the vault (HTTP 404).
	ErrSecretNotFound = errors.New("vault secret was not found")

	// ErrUpstream is returned for every other vault failure: transport
	// errors, 5xx responses, malformed bodies.
	ErrUpstream = errors.New("vault request failed")
)
