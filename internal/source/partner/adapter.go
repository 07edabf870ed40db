// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package partner is the data-source adapter for banks exposed through an
// aggregation partner's HTTP API. Unlike the scraper path there is no
// browser: the partner holds the bank relationship and this adapter only
// exchanges tokens and normalizes its responses.
package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/bank-feed/internal/config"
	"github.com/MKhiriev/bank-feed/internal/source"
	"github.com/MKhiriev/bank-feed/internal/vault"
	"github.com/MKhiriev/bank-feed/models"
)

const dateLayout = "2006-01-02"

type linkTokenRequest struct {
	UserID string `json:"userId"`
}

type linkTokenResponse struct {
	LinkToken string `json:"linkToken"`
	ExpiresIn int    `json:"expiresIn"`
}

type providerAccount struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Subtype     string `json:"subtype"`
	Institution string `json:"institution"`
	Balances    struct {
		Current   decimal.Decimal `json:"current"`
		Available decimal.Decimal `json:"available"`
		Currency  string          `json:"currency"`
	} `json:"balances"`
}

type providerTransaction struct {
	ID          string `json:"id"`
	AccountID   string `json:"accountId"`
	Date        string `json:"date"`
	Description string `json:"description"`

	// Amount is signed the same way as the scraped feed: negative for
	// money in, non-negative for money out.
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Pending  bool            `json:"pending"`
}

type accountsResponse struct {
	Accounts []providerAccount `json:"accounts"`
}

type transactionsResponse struct {
	Transactions []providerTransaction `json:"transactions"`
}

// storedCredential is the vault payload shape a finalize-login persists
// for partner connections.
type storedCredential struct {
	AccessToken string `json:"accessToken"`
}

// Adapter implements [source.Adapter] over the partner HTTP API.
type Adapter struct {
	client *resty.Client
	vault  vault.Client
}

// NewAdapter constructs the partner adapter against cfg.BaseURL. The vault
// client resolves the per-connection access token on every fetch; nothing
// is cached.
func NewAdapter(cfg config.Partner, vaultClient vault.Client) *Adapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &Adapter{client: cli, vault: vaultClient}
}

func (a *Adapter) SourceType() models.SourceType {
	return models.SourceTypePartnerAPI
}

// InitiateConnection asks the partner for a short-lived link token the
// client embeds in the provider's login widget.
func (a *Adapter) InitiateConnection(ctx context.Context, userID string) (map[string]any, error) {
	var result linkTokenResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(linkTokenRequest{UserID: userID}).
		SetResult(&result).
		Post("/api/link/token")
	if err != nil {
		return nil, fmt.Errorf("%w: link token request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.LinkToken == "" {
		return nil, fmt.Errorf("%w: link token response was empty", ErrUpstream)
	}

	return map[string]any{
		"linkToken": result.LinkToken,
		"expiresIn": result.ExpiresIn,
	}, nil
}

// ValidateFinalizePayload requires the provider access token obtained from
// the partner's login widget.
func (a *Adapter) ValidateFinalizePayload(payload map[string]any) error {
	v := source.NewValidationError()
	v.RequireString(payload, "accessToken")
	return v.ErrOrNil()
}

// FetchAccounts lists the standardized accounts behind conn.
func (a *Adapter) FetchAccounts(ctx context.Context, conn models.BankConnection, cred source.CredentialContext) ([]models.StandardizedAccount, error) {
	accessToken, err := a.resolveAccessToken(ctx, conn, cred)
	if err != nil {
		return nil, err
	}

	var result accountsResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&result).
		Get("/api/accounts")
	if err != nil {
		return nil, fmt.Errorf("%w: accounts request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	accounts := make([]models.StandardizedAccount, 0, len(result.Accounts))
	now := time.Now()
	for _, acc := range result.Accounts {
		accounts = append(accounts, normalizeAccount(acc, now))
	}
	return accounts, nil
}

// FetchTransactions lists transactions for one account within [start, end].
// The partner distinguishes accounts, so an absent or synthetic accountID
// is a validation error rather than an implicit "all accounts".
func (a *Adapter) FetchTransactions(ctx context.Context, conn models.BankConnection, accountID string, start, end time.Time, cred source.CredentialContext) ([]models.StandardizedTransaction, error) {
	if accountID == "" || accountID == source.DefaultAccountID {
		v := source.NewValidationError()
		v.Add("accountId", "is required for partner-api connections")
		return nil, v.ErrOrNil()
	}

	accessToken, err := a.resolveAccessToken(ctx, conn, cred)
	if err != nil {
		return nil, err
	}

	req := a.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken)
	if !start.IsZero() {
		req.SetQueryParam("startDate", start.Format(dateLayout))
	}
	if !end.IsZero() {
		req.SetQueryParam("endDate", end.Format(dateLayout))
	}

	var result transactionsResponse
	resp, err := req.
		SetResult(&result).
		Get("/api/accounts/" + accountID + "/transactions")
	if err != nil {
		return nil, fmt.Errorf("%w: transactions request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	txns := make([]models.StandardizedTransaction, 0, len(result.Transactions))
	for _, raw := range result.Transactions {
		txn, ok := normalizeTransaction(raw, accountID)
		if !ok {
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// resolveAccessToken yields the provider access token for this call:
// either already resolved by the caller or fetched from the vault via the
// connection's stored reference.
func (a *Adapter) resolveAccessToken(ctx context.Context, conn models.BankConnection, cred source.CredentialContext) (string, error) {
	if cred.RawCredential != "" {
		return decodeAccessToken(cred.RawCredential), nil
	}

	raw, err := a.vault.GetSecret(ctx, conn.AuthDetailsRef, cred.VaultAccessToken)
	if err != nil {
		return "", err
	}
	return decodeAccessToken(raw), nil
}

// decodeAccessToken unwraps the stored credential payload. Older records
// hold the bare token string instead of the JSON envelope.
func decodeAccessToken(raw string) string {
	var cred storedCredential
	if err := json.Unmarshal([]byte(raw), &cred); err == nil && cred.AccessToken != "" {
		return cred.AccessToken
	}
	return raw
}

func normalizeAccount(acc providerAccount, fetchedAt time.Time) models.StandardizedAccount {
	return models.StandardizedAccount{
		ID:          acc.ID,
		Name:        acc.Name,
		Type:        accountType(acc.Type),
		Subtype:     acc.Subtype,
		Institution: acc.Institution,
		Balances: models.Balances{
			Current:     acc.Balances.Current,
			Available:   acc.Balances.Available,
			Currency:    acc.Balances.Currency,
			LastUpdated: fetchedAt,
		},
		Metadata: map[string]string{"source": "partner_api"},
	}
}

// normalizeTransaction maps one provider row onto the standardized shape,
// preserving the provider's stable id. Rows with an unparseable date are
// dropped.
func normalizeTransaction(raw providerTransaction, accountID string) (models.StandardizedTransaction, bool) {
	date, err := time.Parse(dateLayout, raw.Date)
	if err != nil {
		return models.StandardizedTransaction{}, false
	}

	txnType := models.Debit
	if raw.Amount.IsNegative() {
		txnType = models.Credit
	}

	return models.StandardizedTransaction{
		ID:          raw.ID,
		AccountID:   accountID,
		Date:        date,
		Description: raw.Description,
		Amount:      raw.Amount.Abs(),
		Currency:    raw.Currency,
		Type:        txnType,
		Pending:     raw.Pending,
	}, true
}

func accountType(raw string) models.AccountType {
	switch strings.ToUpper(raw) {
	case "DEPOSITORY":
		return models.AccountTypeDepository
	case "CREDIT":
		return models.AccountTypeCredit
	default:
		return models.AccountTypeOther
	}
}

// mapHTTPError translates a non-2xx partner response into the package's
// sentinel errors, preserving the response body for diagnostics.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUpstream, resp.StatusCode(), body)
	}
}
