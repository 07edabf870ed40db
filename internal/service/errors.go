package service

import "errors"

var (
	// ErrBankInactive rejects connection creation against a bank whose
	// registry entry is disabled. Existing connections are unaffected.
	ErrBankInactive = errors.New("bank is not accepting new connections")

	// ErrStateConflict is returned when an operation is illegal for the
	// connection's current status, e.g. finalize-login on a connection
	// that is already active.
	ErrStateConflict = errors.New("operation is not allowed in the current connection state")

	// ErrConnectionNotFetchable rejects a data fetch against a connection
	// that has no stored credentials or was explicitly deactivated.
	ErrConnectionNotFetchable = errors.New("connection cannot be fetched")
)
