package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the coarse categorical type of a standardized account.
type AccountType string

const (
	AccountTypeDepository AccountType = "DEPOSITORY"
	AccountTypeCredit     AccountType = "CREDIT"
	AccountTypeOther      AccountType = "OTHER"
)

// TransactionType encodes the direction of a standardized transaction.
type TransactionType string

const (
	// Debit is money leaving the account.
	Debit TransactionType = "DEBIT"

	// Credit is money entering the account.
	Credit TransactionType = "CREDIT"
)

// Balances carries the monetary state of an account at fetch time.
type Balances struct {
	// Current is the booked balance.
	Current decimal.Decimal `json:"current"`

	// Available is the balance available for spending, when the upstream
	// distinguishes it from Current.
	Available decimal.Decimal `json:"available"`

	// Currency is the ISO 4217 currency code.
	Currency string `json:"currency"`

	// LastUpdated is when the upstream last refreshed the balance.
	LastUpdated time.Time `json:"lastUpdated"`
}

// StandardizedAccount is the uniform account representation every
// data-source adapter must produce, regardless of upstream shape.
type StandardizedAccount struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	Subtype     string      `json:"subtype,omitempty"`
	Institution string      `json:"institution"`
	Balances    Balances    `json:"balances"`

	// Metadata carries free-form, adapter-specific provenance.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// StandardizedTransaction is the uniform transaction representation every
// data-source adapter must produce.
//
// ID must be stable and reproducible across repeated fetches of the same
// underlying event so that ingestion stays idempotent.
type StandardizedTransaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`

	// Amount is always a non-negative magnitude; direction lives in Type.
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Type     TransactionType `json:"type"`
	Pending  bool            `json:"pending"`

	Metadata map[string]string `json:"metadata,omitempty"`
}
