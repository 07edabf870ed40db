// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scrape is the data-source adapter for banks whose data is
// extracted by driving a headless browser. It delegates the browser work
// to the orchestration engine and normalizes the raw payload it returns.
package scrape

import (
	"context"
	"time"

	"github.com/MKhiriev/bank-feed/internal/source"
	"github.com/MKhiriev/bank-feed/models"
)

// Engine is the slice of the orchestration engine the adapter consumes.
type Engine interface {
	Scrape(ctx context.Context, userID, connectionID, vaultAccessToken string) (models.ScrapedData, error)
}

// Adapter implements [source.Adapter] for scraper-backed banks.
type Adapter struct {
	engine Engine
}

// NewAdapter constructs the scraper adapter on top of an orchestration
// engine.
func NewAdapter(engine Engine) *Adapter {
	return &Adapter{engine: engine}
}

func (a *Adapter) SourceType() models.SourceType {
	return models.SourceTypeScraper
}

// InitiateConnection returns nothing: for scraped banks the credentials
// are supplied later through finalize-login, there is no provider
// handshake.
func (a *Adapter) InitiateConnection(_ context.Context, _ string) (map[string]any, error) {
	return nil, nil
}

// ValidateFinalizePayload requires the bank login fields the automation
// strategies consume.
func (a *Adapter) ValidateFinalizePayload(payload map[string]any) error {
	v := source.NewValidationError()
	v.RequireString(payload, "username")
	v.RequireString(payload, "password")
	return v.ErrOrNil()
}

// FetchAccounts runs a full scrape and derives the standardized accounts
// from the extracted balances. Scraped sites expose no account listing
// cheaper than a full extraction, so this costs the same as a
// transaction fetch.
func (a *Adapter) FetchAccounts(ctx context.Context, conn models.BankConnection, cred source.CredentialContext) ([]models.StandardizedAccount, error) {
	data, err := a.engine.Scrape(ctx, conn.UserID, conn.ID, cred.VaultAccessToken)
	if err != nil {
		return nil, err
	}
	return normalizeAccounts(conn, data, time.Now()), nil
}

// FetchTransactions runs a full scrape and normalizes the result.
// accountID may be [source.DefaultAccountID] to request every account's
// transactions; a concrete account id narrows the result to that account.
func (a *Adapter) FetchTransactions(ctx context.Context, conn models.BankConnection, accountID string, start, end time.Time, cred source.CredentialContext) ([]models.StandardizedTransaction, error) {
	if accountID == "" {
		accountID = source.DefaultAccountID
	}

	data, err := a.engine.Scrape(ctx, conn.UserID, conn.ID, cred.VaultAccessToken)
	if err != nil {
		return nil, err
	}

	all := normalizeTransactions(conn.ID, data)
	out := make([]models.StandardizedTransaction, 0, len(all))
	for _, txn := range all {
		if accountID != source.DefaultAccountID && txn.AccountID != accountID {
			continue
		}
		if !inRange(txn.Date, start, end) {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}

// inRange reports whether date falls within [start, end], both inclusive.
// A zero bound is open on that side.
func inRange(date, start, end time.Time) bool {
	if !start.IsZero() && date.Before(start) {
		return false
	}
	if !end.IsZero() && date.After(end) {
		return false
	}
	return true
}
