// Package http exposes the bank-connection lifecycle over a chi router.
//
// Authentication is owned by an upstream gateway: requests arrive with the
// user identity in the X-User-ID header and, where an operation touches
// the external vault, the caller's vault access token in X-Vault-Token.
// This service never issues or verifies tokens itself.
package http
