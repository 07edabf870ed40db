// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"

	"github.com/MKhiriev/bank-feed/models"
)

// Manager is the source-type registry. It is built once at startup,
// validated eagerly, and read-only afterwards, so lookups need no locking.
//
// The Manager is pure dispatch: it holds no source-specific behavior. Any
// logic that differs between source kinds belongs in the adapters.
type Manager struct {
	adapters map[models.SourceType]Adapter
}

// NewManager registers the given adapters and validates full coverage of
// [models.AllSourceTypes]. A missing or duplicate registration is a fatal
// configuration error reported before the first request, never at use time.
func NewManager(adapters ...Adapter) (*Manager, error) {
	m := &Manager{adapters: make(map[models.SourceType]Adapter, len(adapters))}

	for _, adapter := range adapters {
		st := adapter.SourceType()
		if _, exists := m.adapters[st]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAdapter, st)
		}
		m.adapters[st] = adapter
	}

	if err := m.ValidateCoverage(); err != nil {
		return nil, err
	}

	return m, nil
}

// ValidateCoverage checks that every declared source type has an adapter.
func (m *Manager) ValidateCoverage() error {
	for _, st := range models.AllSourceTypes {
		if _, ok := m.adapters[st]; !ok {
			return fmt.Errorf("%w: %s", ErrAdapterNotRegistered, st)
		}
	}
	return nil
}

// Adapter returns the adapter registered for sourceType. Given a validated
// Manager this can only fail for a source type outside the declared enum,
// which still maps to the configuration error.
func (m *Manager) Adapter(sourceType models.SourceType) (Adapter, error) {
	adapter, ok := m.adapters[sourceType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAdapterNotRegistered, sourceType)
	}
	return adapter, nil
}
