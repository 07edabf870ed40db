package source

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports every violated field of a finalize-login payload.
// Adapters accumulate all violations before returning so the caller can fix
// the payload in one round trip.
type ValidationError struct {
	// Fields maps field name to a human-readable violation description.
	Fields map[string]string
}

// NewValidationError constructs an empty [*ValidationError] ready to
// accumulate violations.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records one violated field.
func (v *ValidationError) Add(field, reason string) {
	v.Fields[field] = reason
}

// HasViolations reports whether any field was recorded.
func (v *ValidationError) HasViolations() bool {
	return len(v.Fields) > 0
}

// ErrOrNil returns the receiver as an error when violations exist, nil
// otherwise. Returning nil directly avoids the typed-nil error pitfall.
func (v *ValidationError) ErrOrNil() error {
	if v.HasViolations() {
		return v
	}
	return nil
}

// Error implements the error interface with a stable, sorted field list.
func (v *ValidationError) Error() string {
	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, v.Fields[name]))
	}

	return "invalid payload: " + strings.Join(parts, "; ")
}

// RequireString validates that payload[field] is a non-empty string and
// records a violation otherwise. Returns the value when valid.
func (v *ValidationError) RequireString(payload map[string]any, field string) string {
	raw, ok := payload[field]
	if !ok {
		v.Add(field, "is required")
		return ""
	}

	value, ok := raw.(string)
	if !ok {
		v.Add(field, "must be a string")
		return ""
	}
	if strings.TrimSpace(value) == "" {
		v.Add(field, "must not be empty")
		return ""
	}

	return value
}
