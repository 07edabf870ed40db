package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.services.BankService.ListBanks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, banks)
}

func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.services.BankService.GetBank(r.Context(), chi.URLParam(r, "bankID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bank)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
