package source

import "errors"

var (
	// ErrAdapterNotRegistered is a configuration error: a declared source
	// type has no registered adapter. [Manager.ValidateCoverage] surfaces
	// it eagerly at startup so misconfiguration never reaches traffic.
	ErrAdapterNotRegistered = errors.New("no adapter registered for source type")

	// ErrDuplicateAdapter is returned when two adapters claim the same
	// source type during registration.
	ErrDuplicateAdapter = errors.New("adapter already registered for source type")
)
