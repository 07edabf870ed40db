// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/models"
)

// credentialSecretHeader carries the caller-held secret required to
// decrypt a stored platform credential. It is never persisted.
const credentialSecretHeader = "X-Credential-Secret"

type storeCredentialRequest struct {
	KeyType models.KeyType `json:"keyType"`
	Value   string         `json:"value"`
}

type storeCredentialResponse struct {
	Secret string `json:"secret"`
}

type retrieveCredentialResponse struct {
	Value string `json:"value"`
}

func (h *Handler) storeCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := userIDFromContext(r.Context())

	var req storeCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.storeCredential").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.KeyType == "" || req.Value == "" {
		http.Error(w, "keyType and value are required", http.StatusBadRequest)
		return
	}

	secret, err := h.services.CredentialService.Store(r.Context(), userID, req.KeyType, req.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, storeCredentialResponse{Secret: secret})
}

func (h *Handler) retrieveCredential(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	secret := r.Header.Get(credentialSecretHeader)
	if secret == "" {
		http.Error(w, "missing "+credentialSecretHeader+" header", http.StatusUnauthorized)
		return
	}

	keyType := models.KeyType(chi.URLParam(r, "keyType"))
	value, err := h.services.CredentialService.Retrieve(r.Context(), userID, keyType, secret)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, retrieveCredentialResponse{Value: value})
}
