package store

import (
	"context"

	"github.com/MKhiriev/bank-feed/internal/config"
	"github.com/MKhiriev/bank-feed/internal/logger"
)

// Storages aggregates every repository the application uses.
type Storages struct {
	BankRepository       BankRepository
	ConnectionRepository ConnectionRepository
	CredentialRepository CredentialRepository
}

// NewStorages connects to PostgreSQL, applies embedded migrations, and
// constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		BankRepository:       NewBankRepository(db, log),
		ConnectionRepository: NewConnectionRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
	}, nil
}
