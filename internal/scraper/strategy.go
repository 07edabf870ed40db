// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scraper

import (
	"context"

	"github.com/MKhiriev/bank-feed/models"
)

//go:generate mockgen -source=strategy.go -destination=../mock/strategy_mock.go -package=mock

// Strategy drives a browser session against one institution's website.
//
// A strategy owns neither the browser lifecycle nor its own timeout — the
// engine owns both. Scrape receives the raw bank credential resolved from
// the vault and a ready page already navigated to StartURL, and returns
// the raw per-account payload for normalization.
type Strategy interface {
	// Name keys the strategy in the registry; it must match the bank's
	// scraper identifier.
	Name() string

	// StartURL is where the engine navigates before invoking Scrape.
	StartURL() string

	Scrape(ctx context.Context, secret string, page Page) (models.ScrapedData, error)
}

// Registry holds every automation strategy keyed by name. Built once at
// startup and read-only afterwards.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry registers the given strategies. A later strategy with a
// duplicate name silently wins; bank registries should not declare
// duplicates in the first place.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: make(map[string]Strategy, len(strategies))}
	for _, s := range strategies {
		r.strategies[s.Name()] = s
	}
	return r
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (Strategy, bool) {
	s, ok := r.strategies[name]
	return s, ok
}
