// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/models"
)

const dateQueryLayout = "2006-01-02"

type createConnectionRequest struct {
	BankID string `json:"bankId"`
	Alias  string `json:"alias"`
}

type updateAliasRequest struct {
	Alias string `json:"alias"`
}

func (h *Handler) createConnection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := userIDFromContext(r.Context())

	var req createConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createConnection").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.BankID == "" {
		http.Error(w, "bankId is required", http.StatusBadRequest)
		return
	}

	conn, err := h.services.ConnectionService.Create(r.Context(), userID, req.BankID, req.Alias)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, conn)
}

func (h *Handler) listConnections(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	filter := store.ConnectionFilter{
		Status: models.ConnectionStatus(r.URL.Query().Get("status")),
		BankID: r.URL.Query().Get("bankId"),
	}

	connections, err := h.services.ConnectionService.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, connections)
}

func (h *Handler) getConnection(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	conn, err := h.services.ConnectionService.Get(r.Context(), userID, chi.URLParam(r, "connectionID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, conn)
}

func (h *Handler) initiateLogin(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	payload, err := h.services.ConnectionService.InitiateLogin(r.Context(), userID, chi.URLParam(r, "connectionID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if payload == nil {
		// Scraped banks have no handshake: credentials arrive at finalize.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) finalizeLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := userIDFromContext(r.Context())

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.finalizeLogin").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	conn, err := h.services.ConnectionService.FinalizeLogin(r.Context(), userID,
		chi.URLParam(r, "connectionID"), payload, vaultToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, conn)
}

func (h *Handler) fetchAccounts(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	accounts, err := h.services.ConnectionService.FetchAccounts(r.Context(), userID,
		chi.URLParam(r, "connectionID"), vaultToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, accounts)
}

func (h *Handler) fetchTransactions(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	start, err := parseDateQuery(r, "startDate")
	if err != nil {
		http.Error(w, "startDate must be formatted as "+dateQueryLayout, http.StatusBadRequest)
		return
	}
	end, err := parseDateQuery(r, "endDate")
	if err != nil {
		http.Error(w, "endDate must be formatted as "+dateQueryLayout, http.StatusBadRequest)
		return
	}

	txns, err := h.services.ConnectionService.FetchTransactions(r.Context(), userID,
		chi.URLParam(r, "connectionID"), chi.URLParam(r, "accountID"), start, end, vaultToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, txns)
}

func (h *Handler) updateAlias(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := userIDFromContext(r.Context())

	var req updateAliasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateAlias").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ConnectionService.UpdateAlias(r.Context(), userID,
		chi.URLParam(r, "connectionID"), req.Alias); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deactivateConnection(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	if err := h.services.ConnectionService.Deactivate(r.Context(), userID,
		chi.URLParam(r, "connectionID")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteConnection(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	if err := h.services.ConnectionService.Delete(r.Context(), userID,
		chi.URLParam(r, "connectionID")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseDateQuery(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateQueryLayout, raw)
}
