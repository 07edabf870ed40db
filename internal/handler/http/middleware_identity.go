// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
)

const (
	userIDHeader     = "X-User-ID"
	vaultTokenHeader = "X-Vault-Token"
)

// contextKey is a private type for context keys so no other package can
// collide with them.
type contextKey string

const userIDCtxKey = contextKey("userID")

// withIdentity extracts the gateway-established user identity from the
// request headers. A request without an identity never reaches a handler.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			http.Error(w, "missing "+userIDHeader+" header", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext retrieves the user identity stored by withIdentity.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	return userID, ok && userID != ""
}

// vaultToken reads the caller-held vault access token. It may legitimately
// be empty for operations that never touch the vault.
func vaultToken(r *http.Request) string {
	return r.Header.Get(vaultTokenHeader)
}
