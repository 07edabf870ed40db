// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/bank-feed/internal/config"
)

type createSecretRequest struct {
	Key   string         `json:"key"`
	Value map[string]any `json:"value"`
	OrgID string         `json:"orgId"`
}

type createSecretResponse struct {
	SecretRef string `json:"secretRef"`
}

type getSecretResponse struct {
	Value string `json:"value"`
}

// httpClient is the resty-backed implementation of [Client].
type httpClient struct {
	client *resty.Client
}

// NewClient constructs a [Client] talking to the secrets-manager HTTP API
// at cfg.BaseURL. The caller's access token is supplied per call, never
// stored on the client.
func NewClient(cfg config.Vault) Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpClient{client: cli}
}

// CreateSecret implements [Client].
func (h *httpClient) CreateSecret(ctx context.Context, key string, value map[string]any, accessToken, orgID string) (string, error) {
	var result createSecretResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(accessToken).
		SetBody(createSecretRequest{Key: key, Value: value, OrgID: orgID}).
		SetResult(&result).
		Post("/api/secrets")
	if err != nil {
		return "", fmt.Errorf("%w: create secret request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if result.SecretRef == "" {
		return "", fmt.Errorf("%w: create secret returned empty reference", ErrUpstream)
	}

	return result.SecretRef, nil
}

// GetSecret implements [Client].
func (h *httpClient) GetSecret(ctx context.Context, secretRef, accessToken string) (string, error) {
	var result getSecretResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&result).
		Get("/api/secrets/" + secretRef)
	if err != nil {
		return "", fmt.Errorf("%w: get secret request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Value, nil
}

// mapHTTPError translates a non-2xx vault response into the package's
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
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrSecretNotFound, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUpstream, resp.StatusCode(), body)
	}
}
