package scrape

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bank-feed/models"
)

func rawBlock(txns ...map[string]any) map[string]any {
	rows := make([]any, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, txn)
	}
	return map[string]any{
		"transactions": rows,
		"totalBalance": 1250.75,
		"accountKind":  "savings",
	}
}

func TestNormalizeTransactions(t *testing.T) {
	data := models.ScrapedData{
		"My Savings Account": rawBlock(map[string]any{
			"date":       "2026-08-01",
			"references": []any{"REF1", "Transfer", "", ""},
			"amount":     -100.50,
		}),
	}

	txns := normalizeTransactions("conn-1", data)
	require.Len(t, txns, 1)

	txn := txns[0]
	assert.Equal(t, "REF1 - Transfer", txn.Description)
	assert.True(t, decimal.NewFromFloat(100.50).Equal(txn.Amount), "amount must be the magnitude, got %s", txn.Amount)
	assert.Equal(t, models.Credit, txn.Type, "a negative raw amount is money in")
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), txn.Date)
	assert.NotEmpty(t, txn.ID)
}

func TestNormalizeTransactionsDebitForNonNegative(t *testing.T) {
	data := models.ScrapedData{
		"Account": rawBlock(
			map[string]any{"date": "2026-08-01", "references": []any{"Groceries"}, "amount": 55.20},
			map[string]any{"date": "2026-08-02", "references": []any{"Adjustment"}, "amount": 0.0},
		),
	}

	txns := normalizeTransactions("conn-1", data)
	require.Len(t, txns, 2)
	assert.Equal(t, models.Debit, txns[0].Type)
	assert.Equal(t, models.Debit, txns[1].Type, "zero is non-negative, so money out")
}

func TestNormalizeTransactionsDeterministicIDs(t *testing.T) {
	data := models.ScrapedData{
		"Account": rawBlock(map[string]any{
			"date":       "2026-08-01",
			"references": []any{"REF1"},
			"amount":     -10.0,
		}),
	}

	first := normalizeTransactions("conn-1", data)
	second := normalizeTransactions("conn-1", data)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID, "re-ingesting the same row must produce the same id")

	other := normalizeTransactions("conn-2", data)
	require.Len(t, other, 1)
	assert.NotEqual(t, first[0].ID, other[0].ID, "ids are scoped to the connection")
}

func TestNormalizeTransactionsSkipsMalformedBlocks(t *testing.T) {
	data := models.ScrapedData{
		"Not An Object":   "oops",
		"No Transactions": map[string]any{"totalBalance": 10.0},
		"Bad List":        map[string]any{"transactions": "not-a-list"},
		"Good": rawBlock(map[string]any{
			"date":       "2026-08-01",
			"references": []any{"REF1"},
			"amount":     -10.0,
		}),
	}

	txns := normalizeTransactions("conn-1", data)
	require.Len(t, txns, 1, "malformed blocks are dropped, not fatal")
	assert.Equal(t, "REF1", txns[0].Description)
}

func TestNormalizeTransactionsSkipsUnparseableDates(t *testing.T) {
	data := models.ScrapedData{
		"Account": rawBlock(
			map[string]any{"date": "yesterday", "references": []any{"REF1"}, "amount": -10.0},
			map[string]any{"date": "02 Aug 2026", "references": []any{"REF2"}, "amount": -20.0},
		),
	}

	txns := normalizeTransactions("conn-1", data)
	require.Len(t, txns, 1)
	assert.Equal(t, "REF2", txns[0].Description)
}

func TestNormalizeAccounts(t *testing.T) {
	conn := models.BankConnection{ID: "conn-1", BankID: "bank-1"}
	now := time.Now()
	data := models.ScrapedData{
		"My Savings Account": rawBlock(),
		"My Card": map[string]any{
			"transactions": []any{},
			"totalBalance": -420.00,
			"accountKind":  "credit",
		},
		"Broken": 42,
	}

	accounts := normalizeAccounts(conn, data, now)
	require.Len(t, accounts, 2)

	// Sorted by name: "My Card" first.
	card := accounts[0]
	assert.Equal(t, "My Card", card.Name)
	assert.Equal(t, models.AccountTypeCredit, card.Type)
	assert.True(t, decimal.NewFromFloat(-420.00).Equal(card.Balances.Current))

	savings := accounts[1]
	assert.Equal(t, "My Savings Account", savings.Name)
	assert.Equal(t, models.AccountTypeDepository, savings.Type)
	assert.Equal(t, "savings", savings.Subtype)
	assert.Equal(t, "bank-1", savings.Institution)
	assert.Equal(t, now, savings.Balances.LastUpdated)
	assert.NotEqual(t, card.ID, savings.ID)
}

func TestJoinReferences(t *testing.T) {
	assert.Equal(t, "REF1 - Transfer", joinReferences([]string{"REF1", "Transfer", "", "  "}))
	assert.Equal(t, "", joinReferences([]string{"", "   "}))
	assert.Equal(t, "", joinReferences(nil))
}
