package service

import (
	"context"
	"time"

	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BankService reads the bank registry.
type BankService interface {
	ListBanks(ctx context.Context) ([]models.Bank, error)
	GetBank(ctx context.Context, bankID string) (models.Bank, error)
}

// ConnectionService owns the bank-connection lifecycle: creation, the
// two-step login flow, data fetches with their status transitions, and
// removal.
type ConnectionService interface {
	Create(ctx context.Context, userID, bankID, alias string) (models.BankConnection, error)
	List(ctx context.Context, userID string, filter store.ConnectionFilter) ([]models.BankConnection, error)
	Get(ctx context.Context, userID, connectionID string) (models.BankConnection, error)

	// InitiateLogin starts the login flow for a PENDING_AUTH connection.
	// The returned payload is the adapter's handshake (nil for scraped
	// banks); the connection record is not mutated.
	InitiateLogin(ctx context.Context, userID, connectionID string) (map[string]any, error)

	// FinalizeLogin validates the payload, stores the credential in the
	// external vault under the organization scope, and activates the
	// connection. Only legal from PENDING_AUTH; any validation failure
	// leaves the connection unchanged.
	FinalizeLogin(ctx context.Context, userID, connectionID string, payload map[string]any, vaultAccessToken string) (models.BankConnection, error)

	FetchAccounts(ctx context.Context, userID, connectionID, vaultAccessToken string) ([]models.StandardizedAccount, error)
	FetchTransactions(ctx context.Context, userID, connectionID, accountID string, start, end time.Time, vaultAccessToken string) ([]models.StandardizedTransaction, error)

	UpdateAlias(ctx context.Context, userID, connectionID, alias string) error

	// Deactivate moves the connection to INACTIVE. An inactive connection
	// is never fetched and is never auto-reactivated by a failed attempt.
	Deactivate(ctx context.Context, userID, connectionID string) error

	// Delete removes the connection record from any state. The vault
	// secret is not revoked; vault cleanup is an external concern.
	Delete(ctx context.Context, userID, connectionID string) error
}

// CredentialService protects platform-issued third-party access tokens,
// encrypting them at rest with a caller-held secret.
type CredentialService interface {
	// Store encrypts plaintext for the user and persists the ciphertext,
	// overwriting any previous record for the key type. The returned
	// secret is the only way to decrypt; the server does not retain it.
	Store(ctx context.Context, userID string, keyType models.KeyType, plaintext string) (secret string, err error)

	// Retrieve decrypts the stored credential with the caller-held
	// secret. A missing record is [store.ErrCredentialNotFound]; a failed
	// tag verification is [crypto.ErrTamperedSecret] — the two are never
	// conflated.
	Retrieve(ctx context.Context, userID string, keyType models.KeyType, secret string) (string, error)
}
