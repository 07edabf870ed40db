package store

import (
	"context"
	"time"

	"github.com/MKhiriev/bank-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BankRepository reads the bank registry. The registry is administered out
// of band; this service only consumes it.
type BankRepository interface {
	FindAll(ctx context.Context) ([]models.Bank, error)
	FindByID(ctx context.Context, bankID string) (models.Bank, error)
}

// ConnectionFilter narrows [ConnectionRepository.FindByUser] results.
// Zero-valued fields are ignored.
type ConnectionFilter struct {
	Status models.ConnectionStatus
	BankID string
}

// ConnectionRepository persists bank connections. Every mutation is atomic
// for one record; there are no partial writes.
type ConnectionRepository interface {
	Create(ctx context.Context, conn models.BankConnection) error
	FindByID(ctx context.Context, userID, connectionID string) (models.BankConnection, error)

	// FindWithBank loads a connection together with its bank registry entry.
	FindWithBank(ctx context.Context, userID, connectionID string) (models.BankConnection, models.Bank, error)

	FindByUser(ctx context.Context, userID string, filter ConnectionFilter) ([]models.BankConnection, error)

	// FindSyncable returns every connection eligible for a background sweep:
	// status ACTIVE with a vault reference present.
	FindSyncable(ctx context.Context) ([]models.BankConnection, error)

	// Activate atomically stores the vault reference and moves the
	// connection to ACTIVE. Used only by a successful finalize-login.
	Activate(ctx context.Context, userID, connectionID, authDetailsRef string) error

	UpdateStatus(ctx context.Context, connectionID string, status models.ConnectionStatus) error

	// MarkSynced stamps LastSync and restores the connection to ACTIVE in
	// one statement, so a connection recovering from ERROR becomes
	// syncable again the moment a fetch succeeds.
	MarkSynced(ctx context.Context, connectionID string, at time.Time) error
	UpdateAlias(ctx context.Context, userID, connectionID, alias string) error
	Delete(ctx context.Context, userID, connectionID string) error
}

// CredentialRepository persists encrypted platform credentials. At most one
// record exists per (user, key type); Upsert overwrites.
type CredentialRepository interface {
	Upsert(ctx context.Context, record models.EncryptedCredentialRecord) error
	Find(ctx context.Context, userID string, keyType models.KeyType) (models.EncryptedCredentialRecord, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. The core performs no automatic retries; the classification is
// logged for the calling layer.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
