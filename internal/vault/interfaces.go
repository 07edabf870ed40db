package vault

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_client_mock.go -package=mock

// Client is the contract to the external secrets manager. Bank login
// credentials are stored there under an organization scope and referenced
// by an opaque id; this service never persists them itself.
//
// Both operations may fail with [ErrUnauthorized] or [ErrSecretNotFound];
// those failures must reach the caller intact.
type Client interface {
	// CreateSecret stores value under key in the organization's scope and
	// returns the opaque reference to the stored secret.
	CreateSecret(ctx context.Context, key string, value map[string]any, accessToken, orgID string) (string, error)

	// GetSecret resolves a reference previously returned by CreateSecret
	// into the raw secret payload.
	GetSecret(ctx context.Context, secretRef, accessToken string) (string, error)
}
