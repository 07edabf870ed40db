package models

// ScrapedData is the raw payload produced by an automation strategy before
// normalization: a mapping from account display name to that account's
// extracted block. Blocks come straight from in-page extraction and may be
// malformed; the normalizer skips blocks it cannot interpret.
type ScrapedData map[string]any

// RawAccountBlock is the expected shape of one ScrapedData value once
// decoded. Strategies produce it as loosely-typed JSON; normalization
// re-reads it defensively.
type RawAccountBlock struct {
	// Transactions is the list of raw transaction rows for the account.
	Transactions []RawTransaction `json:"transactions"`

	// TotalBalance is the signed account balance as displayed by the site.
	TotalBalance float64 `json:"totalBalance"`

	// AccountKind is the site's own account classification, mapped to an
	// AccountType during normalization.
	AccountKind string `json:"accountKind"`
}

// RawTransaction is one transaction row as extracted from a bank website.
type RawTransaction struct {
	// Date is the transaction date string as shown by the site.
	Date string `json:"date"`

	// References are the description fragments shown for the row; blank
	// fragments are common and dropped during normalization.
	References []string `json:"references"`

	// Amount is the signed amount: negative for money in, non-negative
	// for money out, mirroring the source feed.
	Amount float64 `json:"amount"`
}
