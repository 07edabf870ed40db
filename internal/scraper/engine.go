// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scraper is the scraping orchestration engine: it owns the
// browser lifecycle, strategy dispatch, timeout enforcement, and the
// connection status transitions that happen during a scrape.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/internal/vault"
	"github.com/MKhiriev/bank-feed/models"
)

// Engine turns "scrape connection C with caller-held access token T" into
// raw scraped data, with strict resource and time discipline. Scrapes of
// different connections run concurrently and share no mutable state;
// concurrent scrapes of one connection are rejected.
type Engine struct {
	connections store.ConnectionRepository
	vault       vault.Client
	launcher    Launcher
	strategies  *Registry
	budget      time.Duration
	logger      *logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewEngine constructs an [Engine]. budget bounds the strategy execution
// of every scrape; it must be positive.
func NewEngine(
	connections store.ConnectionRepository,
	vaultClient vault.Client,
	launcher Launcher,
	strategies *Registry,
	budget time.Duration,
	log *logger.Logger,
) *Engine {
	return &Engine{
		connections: connections,
		vault:       vaultClient,
		launcher:    launcher,
		strategies:  strategies,
		budget:      budget,
		logger:      log,
		inFlight:    make(map[string]struct{}),
	}
}

type scrapeResult struct {
	data models.ScrapedData
	err  error
}

// Scrape runs the full orchestration for one connection and returns the
// raw scraped data for normalization by the adapter layer.
//
// Precondition failures (unknown connection, inactive status, missing
// credentials, unknown strategy, configuration gaps) reject the call and
// leave the connection untouched. Any failure after the preconditions —
// browser, vault, navigation, strategy, timeout — sets the connection
// status to ERROR before propagating. Success updates LastSync.
func (e *Engine) Scrape(ctx context.Context, userID, connectionID, vaultAccessToken string) (models.ScrapedData, error) {
	log := logger.FromContext(ctx)

	if !e.begin(connectionID) {
		return nil, ErrScrapeInProgress
	}
	defer e.end(connectionID)

	conn, bank, err := e.connections.FindWithBank(ctx, userID, connectionID)
	if err != nil {
		return nil, err
	}

	if conn.Status == models.StatusInactive {
		return nil, ErrConnectionInactive
	}
	if conn.AuthDetailsRef == "" {
		return nil, ErrConnectionNotReady
	}
	if bank.ScraperIdentifier == "" {
		return nil, fmt.Errorf("%w: bank %s", ErrMissingScraperIdentifier, bank.ID)
	}

	strategy, ok := e.strategies.Get(bank.ScraperIdentifier)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStrategyNotFound, bank.ScraperIdentifier)
	}

	// A fresh, isolated browser process for this single request.
	browser, err := e.launcher.Launch(ctx)
	if err != nil {
		e.markError(ctx, connectionID)
		return nil, fmt.Errorf("%w: launch: %w", ErrBrowser, err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			log.Err(closeErr).
				Str("connection_id", connectionID).
				Msg("failed to close browser")
		}
	}()

	// Optimistic "in progress" signal so observers see a live attempt
	// before the slow work starts.
	if err = e.connections.UpdateStatus(ctx, connectionID, models.StatusActive); err != nil {
		return nil, err
	}

	// Each scrape re-resolves the secret; there is no credential cache.
	secret, err := e.vault.GetSecret(ctx, conn.AuthDetailsRef, vaultAccessToken)
	if err != nil {
		e.markError(ctx, connectionID)
		return nil, err
	}

	page, err := browser.NewPage(ctx)
	if err != nil {
		e.markError(ctx, connectionID)
		return nil, fmt.Errorf("%w: new page: %w", ErrBrowser, err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			log.Err(closeErr).
				Str("connection_id", connectionID).
				Msg("failed to close page")
		}
	}()

	if err = page.Navigate(ctx, strategy.StartURL()); err != nil {
		e.markError(ctx, connectionID)
		return nil, fmt.Errorf("%w: navigate: %w", ErrBrowser, err)
	}
	if err = page.WaitReady(ctx); err != nil {
		e.markError(ctx, connectionID)
		return nil, fmt.Errorf("%w: wait ready: %w", ErrBrowser, err)
	}

	data, err := e.raceStrategy(ctx, strategy, secret, page)
	if err != nil {
		e.markError(ctx, connectionID)
		return nil, err
	}

	if err = e.connections.MarkSynced(ctx, connectionID, time.Now()); err != nil {
		return nil, err
	}

	log.Info().
		Str("connection_id", connectionID).
		Str("strategy", strategy.Name()).
		Int("accounts", len(data)).
		Msg("scrape completed")

	return data, nil
}

// raceStrategy races the strategy against the wall-clock budget. The
// loser is not awaited: on timeout the goroutine may keep running until
// the deferred page/browser close calls pull its handles away, which is
// the cooperative cancellation the resource model allows.
func (e *Engine) raceStrategy(ctx context.Context, strategy Strategy, secret string, page Page) (models.ScrapedData, error) {
	scrapeCtx, cancel := context.WithTimeout(ctx, e.budget)
	defer cancel()

	results := make(chan scrapeResult, 1)
	go func() {
		data, err := strategy.Scrape(scrapeCtx, secret, page)
		results <- scrapeResult{data: data, err: err}
	}()

	select {
	case res := <-results:
		if res.err != nil {
			// A cooperative strategy returns the deadline error itself when
			// the budget expires; that is still a budget overrun.
			if errors.Is(res.err, context.DeadlineExceeded) && ctx.Err() == nil {
				return nil, fmt.Errorf("%w: %s", ErrScrapeTimeout, e.budget)
			}
			return nil, fmt.Errorf("strategy %s: %w", strategy.Name(), res.err)
		}
		return res.data, nil
	case <-scrapeCtx.Done():
		if ctx.Err() != nil {
			// The caller's context died first; report that, not a budget
			// overrun.
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s", ErrScrapeTimeout, e.budget)
	}
}

// markError moves the connection to ERROR on a failed attempt. The caller
// context may already be cancelled (timeout path), so the status write
// detaches from its deadline while keeping its values.
func (e *Engine) markError(ctx context.Context, connectionID string) {
	writeCtx := context.WithoutCancel(ctx)
	if err := e.connections.UpdateStatus(writeCtx, connectionID, models.StatusError); err != nil {
		e.logger.Err(err).
			Str("func", "Engine.markError").
			Str("connection_id", connectionID).
			Msg("failed to mark connection as errored")
	}
}

func (e *Engine) begin(connectionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, running := e.inFlight[connectionID]; running {
		return false
	}
	e.inFlight[connectionID] = struct{}{}
	return true
}

func (e *Engine) end(connectionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, connectionID)
}
