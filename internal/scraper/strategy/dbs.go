// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package strategy holds the per-institution automation scripts. Each
// strategy drives an already-opened page through one institution's web
// banking flow and extracts the raw account payload.
package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/bank-feed/internal/scraper"
	"github.com/MKhiriev/bank-feed/models"
)

const (
	dbsName     = "dbs"
	dbsStartURL = "https://internet-banking.dbs.com.sg/IB/Welcome"

	dbsUserIDSelector   = `#UID`
	dbsPINSelector      = `#PIN`
	dbsLoginSelector    = `button[type="submit"]`
	dbsAccountsSelector = `#account-summary`
)

// dbsExtractScript collects every account card on the summary page into
// the raw payload shape: account name -> {transactions, totalBalance,
// accountKind}.
const dbsExtractScript = `
(() => {
	const out = {};
	for (const card of document.querySelectorAll('[data-account-card]')) {
		const name = card.querySelector('[data-account-name]').textContent.trim();
		const rows = [...card.querySelectorAll('[data-txn-row]')].map(row => ({
			date: row.querySelector('[data-txn-date]').textContent.trim(),
			references: [...row.querySelectorAll('[data-txn-ref]')].map(r => r.textContent.trim()),
			amount: parseFloat(row.querySelector('[data-txn-amount]').dataset.value),
		}));
		out[name] = {
			transactions: rows,
			totalBalance: parseFloat(card.querySelector('[data-balance]').dataset.value),
			accountKind: card.dataset.accountKind,
		};
	}
	return out;
})()
`

// dbsCredential is the bank credential shape stored in the vault for DBS
// connections: the same two fields finalize-login validates.
type dbsCredential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DBS is the automation strategy for DBS internet banking.
type DBS struct{}

// NewDBS constructs the DBS strategy.
func NewDBS() *DBS { return &DBS{} }

func (s *DBS) Name() string { return dbsName }

func (s *DBS) StartURL() string { return dbsStartURL }

// Scrape logs in with the vault-resolved credential and extracts the
// account summary. The page is already on StartURL when called.
func (s *DBS) Scrape(ctx context.Context, secret string, page scraper.Page) (models.ScrapedData, error) {
	var cred dbsCredential
	if err := json.Unmarshal([]byte(secret), &cred); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}
	if cred.Username == "" || cred.Password == "" {
		return nil, fmt.Errorf("credential is missing username or password")
	}

	if err := page.Fill(ctx, dbsUserIDSelector, cred.Username); err != nil {
		return nil, fmt.Errorf("fill user id: %w", err)
	}
	if err := page.Fill(ctx, dbsPINSelector, cred.Password); err != nil {
		return nil, fmt.Errorf("fill pin: %w", err)
	}
	if err := page.Click(ctx, dbsLoginSelector); err != nil {
		return nil, fmt.Errorf("submit login: %w", err)
	}
	if err := page.WaitReady(ctx); err != nil {
		return nil, fmt.Errorf("wait for account summary: %w", err)
	}

	// The summary widget renders after login; a login failure never
	// produces it, so this doubles as the auth check.
	if _, err := page.Text(ctx, dbsAccountsSelector); err != nil {
		return nil, fmt.Errorf("account summary not reached: %w", err)
	}

	var data models.ScrapedData
	if err := page.Evaluate(ctx, dbsExtractScript, &data); err != nil {
		return nil, fmt.Errorf("extract accounts: %w", err)
	}

	return data, nil
}
