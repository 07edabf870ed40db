package models

import "time"

// ConnectionStatus is the lifecycle state of a bank connection.
// Transitions are owned by the connection service; no state is truly
// terminal since a connection in StatusError can return to StatusActive
// on the next successful sync.
type ConnectionStatus string

const (
	// StatusPendingAuth is the initial state: the connection exists but
	// the user has not completed the login flow yet.
	StatusPendingAuth ConnectionStatus = "PENDING_AUTH"

	// StatusActive means the login flow completed and the connection can
	// be synced.
	StatusActive ConnectionStatus = "ACTIVE"

	// StatusError means the last sync attempt failed upstream.
	StatusError ConnectionStatus = "ERROR"

	// StatusInactive means the user explicitly deactivated the
	// connection. An inactive connection is never scraped and is never
	// auto-reactivated by a background attempt.
	StatusInactive ConnectionStatus = "INACTIVE"
)

// BankConnection ties one user to one bank registry entry and tracks the
// authentication lifecycle of that link.
type BankConnection struct {
	// ID is the opaque connection identifier.
	ID string `json:"id"`

	// UserID is the owning user.
	UserID string `json:"userId"`

	// BankID references a Bank registry entry.
	BankID string `json:"bankId"`

	// Status is the current lifecycle state.
	Status ConnectionStatus `json:"status"`

	// Alias is an optional user-chosen display name.
	Alias string `json:"alias,omitempty"`

	// LastSync is set only on a successful data fetch.
	LastSync *time.Time `json:"lastSync,omitempty"`

	// AuthDetailsRef is an opaque reference into the external vault where
	// the connection's bank credential is stored. Absent until
	// finalize-login succeeds; set iff the connection has ever reached
	// StatusActive.
	AuthDetailsRef string `json:"-"`

	// CreatedAt is the record creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// CanFetch reports whether the connection may be scraped or fetched: the
// vault reference must be present and the connection must not be
// explicitly deactivated.
func (c *BankConnection) CanFetch() bool {
	return c.AuthDetailsRef != "" && c.Status != StatusInactive
}
