// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source defines the polymorphic data-source adapter layer: the
// rest of the system treats "scrape a bank website" and "call a partner
// API" identically through the [Adapter] interface, and the [Manager]
// dispatches every operation to the implementation registered for the
// connection's source type.
package source

import (
	"context"
	"time"

	"github.com/MKhiriev/bank-feed/models"
)

//go:generate mockgen -source=adapter.go -destination=../mock/adapter_mock.go -package=mock

// CredentialContext carries whatever the adapter needs to reach the
// upstream credential for one call. For the scraper path this is the
// caller's vault access token; a partner adapter may need nothing when the
// access token is already resolved.
type CredentialContext struct {
	// VaultAccessToken unlocks the external vault for this request.
	VaultAccessToken string

	// RawCredential is the already-resolved upstream credential, when the
	// caller has it (e.g. a decrypted partner access token).
	RawCredential string
}

// Adapter is the per-source-type contract. Implementations must be safe
// for concurrent use: one adapter instance serves every connection of its
// source type.
type Adapter interface {
	// SourceType reports which source type the adapter serves.
	SourceType() models.SourceType

	// InitiateConnection starts the login flow. Scraper implementations
	// return nil (credentials arrive later, out of band); partner
	// implementations return a provider handshake payload such as a link
	// token. Never mutates the connection record.
	InitiateConnection(ctx context.Context, userID string) (map[string]any, error)

	// ValidateFinalizePayload checks the finalize-login payload against
	// the implementation's own required shape. It reports every missing
	// or malformed field via [*ValidationError], not just the first.
	ValidateFinalizePayload(payload map[string]any) error

	// FetchAccounts returns the standardized accounts behind conn.
	FetchAccounts(ctx context.Context, conn models.BankConnection, cred CredentialContext) ([]models.StandardizedAccount, error)

	// FetchTransactions returns the standardized transactions for one
	// account of conn within [start, end], both inclusive. Adapters must
	// tolerate accountID being the synthetic default when the upstream
	// does not distinguish accounts, and must reject a missing accountID
	// with a [*ValidationError] when the upstream requires one.
	FetchTransactions(ctx context.Context, conn models.BankConnection, accountID string, start, end time.Time, cred CredentialContext) ([]models.StandardizedTransaction, error)
}

// DefaultAccountID is the synthetic account identifier used when an
// upstream source does not distinguish accounts.
const DefaultAccountID = "default"
