// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application services: the bank-connection
// state machine, data-fetch dispatch through the source adapters, and the
// platform-credential encryption flow.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/bank-feed/internal/config"
	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/scraper"
	"github.com/MKhiriev/bank-feed/internal/source"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/internal/vault"
	"github.com/MKhiriev/bank-feed/models"
)

type connectionService struct {
	banks       store.BankRepository
	connections store.ConnectionRepository
	manager     *source.Manager
	vault       vault.Client
	orgID       string
	logger      *logger.Logger
}

// NewConnectionService constructs the [ConnectionService] over the bank
// registry, the connection repository, the adapter manager, and the
// external vault.
func NewConnectionService(storages *store.Storages, manager *source.Manager, vaultClient vault.Client, cfg config.App, log *logger.Logger) ConnectionService {
	return &connectionService{
		banks:       storages.BankRepository,
		connections: storages.ConnectionRepository,
		manager:     manager,
		vault:       vaultClient,
		orgID:       cfg.VaultOrgID,
		logger:      log,
	}
}

// Create registers a new connection in PENDING_AUTH. The bank must exist
// and be accepting new connections.
func (s *connectionService) Create(ctx context.Context, userID, bankID, alias string) (models.BankConnection, error) {
	bank, err := s.banks.FindByID(ctx, bankID)
	if err != nil {
		return models.BankConnection{}, err
	}
	if !bank.IsActive {
		return models.BankConnection{}, fmt.Errorf("%w: %s", ErrBankInactive, bank.ID)
	}

	conn := models.BankConnection{
		ID:        uuid.NewString(),
		UserID:    userID,
		BankID:    bank.ID,
		Status:    models.StatusPendingAuth,
		Alias:     alias,
		CreatedAt: time.Now(),
	}
	if err = s.connections.Create(ctx, conn); err != nil {
		return models.BankConnection{}, err
	}

	logger.FromContext(ctx).Info().
		Str("connection_id", conn.ID).
		Str("bank_id", bank.ID).
		Msg("connection created")

	return conn, nil
}

func (s *connectionService) List(ctx context.Context, userID string, filter store.ConnectionFilter) ([]models.BankConnection, error) {
	return s.connections.FindByUser(ctx, userID, filter)
}

func (s *connectionService) Get(ctx context.Context, userID, connectionID string) (models.BankConnection, error) {
	return s.connections.FindByID(ctx, userID, connectionID)
}

// InitiateLogin delegates to the bank's adapter. Legal only from
// PENDING_AUTH; the connection record is never mutated here.
func (s *connectionService) InitiateLogin(ctx context.Context, userID, connectionID string) (map[string]any, error) {
	conn, bank, err := s.connections.FindWithBank(ctx, userID, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.Status != models.StatusPendingAuth {
		return nil, fmt.Errorf("%w: initiate-login requires %s, connection is %s",
			ErrStateConflict, models.StatusPendingAuth, conn.Status)
	}

	adapter, err := s.manager.Adapter(bank.SourceType)
	if err != nil {
		return nil, err
	}

	return adapter.InitiateConnection(ctx, userID)
}

// FinalizeLogin completes the login flow: the adapter validates the
// payload, the payload is stored in the external vault under the
// organization scope, and the connection becomes ACTIVE holding only the
// opaque vault reference.
func (s *connectionService) FinalizeLogin(ctx context.Context, userID, connectionID string, payload map[string]any, vaultAccessToken string) (models.BankConnection, error) {
	conn, bank, err := s.connections.FindWithBank(ctx, userID, connectionID)
	if err != nil {
		return models.BankConnection{}, err
	}
	if conn.Status != models.StatusPendingAuth {
		return models.BankConnection{}, fmt.Errorf("%w: finalize-login requires %s, connection is %s",
			ErrStateConflict, models.StatusPendingAuth, conn.Status)
	}

	adapter, err := s.manager.Adapter(bank.SourceType)
	if err != nil {
		return models.BankConnection{}, err
	}
	if err = adapter.ValidateFinalizePayload(payload); err != nil {
		return models.BankConnection{}, err
	}

	ref, err := s.vault.CreateSecret(ctx, conn.ID, payload, vaultAccessToken, s.orgID)
	if err != nil {
		return models.BankConnection{}, err
	}

	if err = s.connections.Activate(ctx, userID, connectionID, ref); err != nil {
		return models.BankConnection{}, err
	}

	logger.FromContext(ctx).Info().
		Str("connection_id", conn.ID).
		Msg("connection activated")

	conn.Status = models.StatusActive
	conn.AuthDetailsRef = ref
	return conn, nil
}

// FetchAccounts dispatches to the bank's adapter. A successful fetch
// stamps LastSync and brings the connection back to ACTIVE, so ERROR is
// recoverable by any later successful sync. A failed fetch moves the
// connection to ERROR unless a precondition check already rejected the
// call.
func (s *connectionService) FetchAccounts(ctx context.Context, userID, connectionID, vaultAccessToken string) ([]models.StandardizedAccount, error) {
	conn, adapter, err := s.fetchTarget(ctx, userID, connectionID)
	if err != nil {
		return nil, err
	}

	accounts, err := adapter.FetchAccounts(ctx, conn, source.CredentialContext{VaultAccessToken: vaultAccessToken})
	if err != nil {
		s.markFetchFailure(ctx, connectionID, err)
		return nil, err
	}

	if err = s.connections.MarkSynced(ctx, connectionID, time.Now()); err != nil {
		return nil, err
	}
	return accounts, nil
}

// FetchTransactions dispatches to the bank's adapter with the same status
// discipline as FetchAccounts.
func (s *connectionService) FetchTransactions(ctx context.Context, userID, connectionID, accountID string, start, end time.Time, vaultAccessToken string) ([]models.StandardizedTransaction, error) {
	conn, adapter, err := s.fetchTarget(ctx, userID, connectionID)
	if err != nil {
		return nil, err
	}

	txns, err := adapter.FetchTransactions(ctx, conn, accountID, start, end, source.CredentialContext{VaultAccessToken: vaultAccessToken})
	if err != nil {
		s.markFetchFailure(ctx, connectionID, err)
		return nil, err
	}

	if err = s.connections.MarkSynced(ctx, connectionID, time.Now()); err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *connectionService) UpdateAlias(ctx context.Context, userID, connectionID, alias string) error {
	return s.connections.UpdateAlias(ctx, userID, connectionID, alias)
}

func (s *connectionService) Deactivate(ctx context.Context, userID, connectionID string) error {
	if _, err := s.connections.FindByID(ctx, userID, connectionID); err != nil {
		return err
	}
	return s.connections.UpdateStatus(ctx, connectionID, models.StatusInactive)
}

// Delete removes the connection record from any state. The vault secret
// referenced by AuthDetailsRef is deliberately left alone.
func (s *connectionService) Delete(ctx context.Context, userID, connectionID string) error {
	return s.connections.Delete(ctx, userID, connectionID)
}

// fetchTarget loads the connection and resolves its adapter, enforcing
// the fetch precondition: credentials present and status not INACTIVE.
func (s *connectionService) fetchTarget(ctx context.Context, userID, connectionID string) (models.BankConnection, source.Adapter, error) {
	conn, bank, err := s.connections.FindWithBank(ctx, userID, connectionID)
	if err != nil {
		return models.BankConnection{}, nil, err
	}
	if !conn.CanFetch() {
		return models.BankConnection{}, nil, fmt.Errorf("%w: status %s", ErrConnectionNotFetchable, conn.Status)
	}

	adapter, err := s.manager.Adapter(bank.SourceType)
	if err != nil {
		return models.BankConnection{}, nil, err
	}
	return conn, adapter, nil
}

// markFetchFailure moves the connection to ERROR after an upstream
// failure. Precondition rejections leave the status untouched, and the
// write survives a dead caller context.
func (s *connectionService) markFetchFailure(ctx context.Context, connectionID string, fetchErr error) {
	if isPreconditionFailure(fetchErr) {
		return
	}

	writeCtx := context.WithoutCancel(ctx)
	if err := s.connections.UpdateStatus(writeCtx, connectionID, models.StatusError); err != nil {
		s.logger.Err(err).
			Str("func", "connectionService.markFetchFailure").
			Str("connection_id", connectionID).
			Msg("failed to mark connection as errored")
	}
}

// isPreconditionFailure reports whether the fetch was rejected before any
// upstream work happened; those rejections must not disturb the status.
func isPreconditionFailure(err error) bool {
	var verr *source.ValidationError
	if errors.As(err, &verr) {
		return true
	}

	for _, sentinel := range []error{
		store.ErrConnectionNotFound,
		store.ErrBankNotFound,
		source.ErrAdapterNotRegistered,
		scraper.ErrScrapeInProgress,
		scraper.ErrConnectionInactive,
		scraper.ErrConnectionNotReady,
		scraper.ErrMissingScraperIdentifier,
		scraper.ErrStrategyNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
