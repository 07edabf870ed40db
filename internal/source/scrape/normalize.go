// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scrape

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/bank-feed/models"
)

const (
	defaultCurrency      = "SGD"
	descriptionSeparator = " - "
)

// dateLayouts are tried in order when parsing the transaction date string
// extracted from a bank website.
var dateLayouts = []string{
	"2006-01-02",
	"02 Jan 2006",
	"02/01/2006",
}

// normalizeAccounts turns the raw scraped payload into standardized
// accounts, one per extracted account block. Malformed blocks are skipped.
func normalizeAccounts(conn models.BankConnection, data models.ScrapedData, fetchedAt time.Time) []models.StandardizedAccount {
	accounts := make([]models.StandardizedAccount, 0, len(data))
	for _, name := range sortedAccountNames(data) {
		block, ok := decodeBlock(data[name])
		if !ok {
			continue
		}

		balance := decimal.NewFromFloat(block.TotalBalance)
		accounts = append(accounts, models.StandardizedAccount{
			ID:          accountID(conn.ID, name),
			Name:        name,
			Type:        accountType(block.AccountKind),
			Subtype:     block.AccountKind,
			Institution: conn.BankID,
			Balances: models.Balances{
				Current:     balance,
				Available:   balance,
				Currency:    defaultCurrency,
				LastUpdated: fetchedAt,
			},
			Metadata: map[string]string{"source": "scraper"},
		})
	}
	return accounts
}

// normalizeTransactions flattens the raw scraped payload into standardized
// transactions. Malformed account blocks and rows with an unparseable date
// are skipped silently; one bad block never fails the batch.
func normalizeTransactions(connectionID string, data models.ScrapedData) []models.StandardizedTransaction {
	var out []models.StandardizedTransaction
	for _, name := range sortedAccountNames(data) {
		block, ok := decodeBlock(data[name])
		if !ok {
			continue
		}

		accID := accountID(connectionID, name)
		for _, raw := range block.Transactions {
			date, ok := parseDate(raw.Date)
			if !ok {
				continue
			}

			description := joinReferences(raw.References)

			txnType := models.Debit
			if raw.Amount < 0 {
				txnType = models.Credit
			}

			out = append(out, models.StandardizedTransaction{
				ID:          transactionID(connectionID, name, raw.Date, description),
				AccountID:   accID,
				Date:        date,
				Description: description,
				Amount:      decimal.NewFromFloat(raw.Amount).Abs(),
				Currency:    defaultCurrency,
				Type:        txnType,
				Pending:     false,
			})
		}
	}
	return out
}

// decodeBlock re-reads one loosely-typed account block defensively: the
// value must be an object carrying an array transaction list.
func decodeBlock(value any) (models.RawAccountBlock, bool) {
	obj, ok := value.(map[string]any)
	if !ok {
		return models.RawAccountBlock{}, false
	}

	rawTxns, ok := obj["transactions"].([]any)
	if !ok {
		return models.RawAccountBlock{}, false
	}

	block := models.RawAccountBlock{
		Transactions: make([]models.RawTransaction, 0, len(rawTxns)),
	}
	if balance, ok := obj["totalBalance"].(float64); ok {
		block.TotalBalance = balance
	}
	if kind, ok := obj["accountKind"].(string); ok {
		block.AccountKind = kind
	}

	for _, rawTxn := range rawTxns {
		txnObj, ok := rawTxn.(map[string]any)
		if !ok {
			continue
		}

		txn := models.RawTransaction{}
		if date, ok := txnObj["date"].(string); ok {
			txn.Date = date
		}
		if amount, ok := txnObj["amount"].(float64); ok {
			txn.Amount = amount
		}
		if refs, ok := txnObj["references"].([]any); ok {
			for _, ref := range refs {
				if s, ok := ref.(string); ok {
					txn.References = append(txn.References, s)
				}
			}
		}
		block.Transactions = append(block.Transactions, txn)
	}

	return block, true
}

// joinReferences builds the description from the non-blank reference
// fragments.
func joinReferences(references []string) string {
	parts := make([]string, 0, len(references))
	for _, ref := range references {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		parts = append(parts, ref)
	}
	return strings.Join(parts, descriptionSeparator)
}

// transactionID derives the stable transaction identifier. The same raw
// row always hashes to the same id, keeping re-ingestion idempotent.
func transactionID(connectionID, accountName, date, reference string) string {
	sum := sha256.Sum256([]byte(connectionID + "|" + accountName + "|" + date + "|" + reference))
	return hex.EncodeToString(sum[:])
}

func accountID(connectionID, accountName string) string {
	sum := sha256.Sum256([]byte(connectionID + "|" + accountName))
	return hex.EncodeToString(sum[:16])
}

func accountType(kind string) models.AccountType {
	switch strings.ToLower(kind) {
	case "savings", "checking", "current", "deposit", "depository":
		return models.AccountTypeDepository
	case "credit", "card", "credit_card":
		return models.AccountTypeCredit
	default:
		return models.AccountTypeOther
	}
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sortedAccountNames(data models.ScrapedData) []string {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	// Map iteration order is random; callers get a stable ordering.
	sort.Strings(names)
	return names
}
