package partner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bank-feed/internal/config"
	"github.com/MKhiriev/bank-feed/internal/source"
	"github.com/MKhiriev/bank-feed/models"
)

type fakeVault struct {
	secret string
	err    error
	gotRef string
}

func (f *fakeVault) CreateSecret(_ context.Context, _ string, _ map[string]any, _, _ string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeVault) GetSecret(_ context.Context, secretRef, _ string) (string, error) {
	f.gotRef = secretRef
	return f.secret, f.err
}

func newTestAdapter(t *testing.T, handler http.HandlerFunc, v *fakeVault) *Adapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewAdapter(config.Partner{BaseURL: srv.URL}, v)
}

func activeConnection() models.BankConnection {
	return models.BankConnection{
		ID:             "conn-1",
		UserID:         "user-1",
		Status:         models.StatusActive,
		AuthDetailsRef: "ref-1",
	}
}

func TestInitiateConnection(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/link/token", r.URL.Path)

		var req linkTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user-1", req.UserID)

		_ = json.NewEncoder(w).Encode(linkTokenResponse{LinkToken: "link-abc", ExpiresIn: 300})
	}, &fakeVault{})

	payload, err := adapter.InitiateConnection(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "link-abc", payload["linkToken"])
	assert.Equal(t, 300, payload["expiresIn"])
}

func TestInitiateConnectionEmptyToken(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(linkTokenResponse{})
	}, &fakeVault{})

	_, err := adapter.InitiateConnection(context.Background(), "user-1")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestValidateFinalizePayload(t *testing.T) {
	adapter := &Adapter{}

	require.NoError(t, adapter.ValidateFinalizePayload(map[string]any{"accessToken": "tok"}))

	err := adapter.ValidateFinalizePayload(map[string]any{})
	require.Error(t, err)

	var verr *source.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "accessToken")
}

func TestFetchAccounts(t *testing.T) {
	v := &fakeVault{secret: `{"accessToken":"provider-tok"}`}
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/accounts", r.URL.Path)
		assert.Equal(t, "Bearer provider-tok", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"accounts":[
			{"id":"acc-1","name":"Everyday","type":"depository","subtype":"checking",
			 "institution":"Partner Bank","balances":{"current":"120.50","available":"100.00","currency":"USD"}}
		]}`))
	}, v)

	accounts, err := adapter.FetchAccounts(context.Background(), activeConnection(), source.CredentialContext{VaultAccessToken: "vault-tok"})
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	acc := accounts[0]
	assert.Equal(t, "acc-1", acc.ID)
	assert.Equal(t, models.AccountTypeDepository, acc.Type)
	assert.Equal(t, "checking", acc.Subtype)
	assert.True(t, decimal.RequireFromString("120.50").Equal(acc.Balances.Current))
	assert.Equal(t, "USD", acc.Balances.Currency)
	assert.Equal(t, "ref-1", v.gotRef, "the vault reference from the connection is resolved")
}

func TestFetchTransactions(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/accounts/acc-1/transactions", r.URL.Path)
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-08-31", r.URL.Query().Get("endDate"))

		_, _ = w.Write([]byte(`{"transactions":[
			{"id":"txn-1","accountId":"acc-1","date":"2026-08-05","description":"Salary","amount":"-2500.00","currency":"USD","pending":false},
			{"id":"txn-2","accountId":"acc-1","date":"2026-08-07","description":"Groceries","amount":"84.30","currency":"USD","pending":true},
			{"id":"txn-3","accountId":"acc-1","date":"not-a-date","description":"Broken","amount":"1.00","currency":"USD","pending":false}
		]}`))
	}, &fakeVault{secret: "bare-token"})

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	txns, err := adapter.FetchTransactions(context.Background(), activeConnection(), "acc-1", start, end, source.CredentialContext{})
	require.NoError(t, err)
	require.Len(t, txns, 2, "the row with a broken date is dropped")

	assert.Equal(t, "txn-1", txns[0].ID)
	assert.Equal(t, models.Credit, txns[0].Type, "negative amount is money in")
	assert.True(t, decimal.RequireFromString("2500.00").Equal(txns[0].Amount))

	assert.Equal(t, models.Debit, txns[1].Type)
	assert.True(t, txns[1].Pending)
}

func TestFetchTransactionsRequiresAccountID(t *testing.T) {
	adapter := &Adapter{}

	for _, accountID := range []string{"", source.DefaultAccountID} {
		_, err := adapter.FetchTransactions(context.Background(), activeConnection(), accountID, time.Time{}, time.Time{}, source.CredentialContext{})
		require.Error(t, err)

		var verr *source.ValidationError
		require.ErrorAs(t, err, &verr, "accountID %q", accountID)
		assert.Contains(t, verr.Fields, "accountId")
	}
}

func TestFetchAccountsUnauthorized(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}, &fakeVault{secret: "tok"})

	_, err := adapter.FetchAccounts(context.Background(), activeConnection(), source.CredentialContext{})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestFetchAccountsVaultFailurePropagates(t *testing.T) {
	vaultErr := errors.New("vault down")
	adapter := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("the partner api must not be called when the vault fails")
	}, &fakeVault{err: vaultErr})

	_, err := adapter.FetchAccounts(context.Background(), activeConnection(), source.CredentialContext{})
	require.ErrorIs(t, err, vaultErr)
}

func TestFetchAccountsUsesRawCredential(t *testing.T) {
	v := &fakeVault{err: errors.New("must not be called")}
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer direct-tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"accounts":[]}`))
	}, v)

	_, err := adapter.FetchAccounts(context.Background(), activeConnection(), source.CredentialContext{RawCredential: "direct-tok"})
	require.NoError(t, err)
	assert.Empty(t, v.gotRef)
}
