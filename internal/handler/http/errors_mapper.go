// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/bank-feed/internal/crypto"
	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/scraper"
	"github.com/MKhiriev/bank-feed/internal/service"
	"github.com/MKhiriev/bank-feed/internal/source"
	"github.com/MKhiriev/bank-feed/internal/source/partner"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/internal/vault"
)

var errorStatusMap = map[error]int{
	store.ErrBankNotFound:       http.StatusNotFound,
	store.ErrConnectionNotFound: http.StatusNotFound,
	store.ErrCredentialNotFound: http.StatusNotFound,
	vault.ErrSecretNotFound:     http.StatusNotFound,
	scraper.ErrStrategyNotFound: http.StatusNotFound,

	service.ErrStateConflict:          http.StatusConflict,
	service.ErrBankInactive:           http.StatusConflict,
	service.ErrConnectionNotFetchable: http.StatusConflict,
	scraper.ErrScrapeInProgress:       http.StatusConflict,
	scraper.ErrConnectionInactive:     http.StatusConflict,
	scraper.ErrConnectionNotReady:     http.StatusConflict,
	store.ErrConnectionNotSaved:       http.StatusConflict,

	crypto.ErrTamperedSecret:      http.StatusUnauthorized,
	crypto.ErrMalformedCiphertext: http.StatusUnauthorized,
	vault.ErrUnauthorized:         http.StatusUnauthorized,
	partner.ErrUnauthorized:       http.StatusUnauthorized,

	scraper.ErrScrapeTimeout: http.StatusGatewayTimeout,

	vault.ErrUpstream:   http.StatusBadGateway,
	partner.ErrUpstream: http.StatusBadGateway,
	scraper.ErrBrowser:  http.StatusBadGateway,

	scraper.ErrMissingScraperIdentifier: http.StatusInternalServerError,
	source.ErrAdapterNotRegistered:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var verr *source.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps err onto the taxonomy status code and renders a JSON
// body. Validation errors additionally enumerate every violated field.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}

	resp := errorResponse{Error: err.Error()}

	var verr *source.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
