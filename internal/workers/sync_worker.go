// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/bank-feed/internal/config"
	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/service"
	"github.com/MKhiriev/bank-feed/internal/store"
)

// syncWorker periodically refreshes every syncable connection: status
// ACTIVE with stored credentials. A failed refresh follows the normal
// state-machine rules (the connection moves to ERROR), and nothing is
// retried until the next sweep.
type syncWorker struct {
	connections store.ConnectionRepository
	service     service.ConnectionService

	interval   time.Duration
	vaultToken string

	ctx    context.Context
	logger *logger.Logger
}

// NewSyncWorker constructs the periodic sync worker. The worker stops
// when ctx is cancelled. A zero interval or an empty machine token
// disables the sweep entirely.
func NewSyncWorker(ctx context.Context, connections store.ConnectionRepository, connectionService service.ConnectionService, cfg config.Workers, log *logger.Logger) Worker {
	return &syncWorker{
		connections: connections,
		service:     connectionService,
		interval:    cfg.SyncInterval,
		vaultToken:  cfg.VaultAccessToken,
		ctx:         ctx,
		logger:      log,
	}
}

// Run implements [Worker]. It spawns the sweep loop and returns.
func (w *syncWorker) Run() {
	if w.interval <= 0 || w.vaultToken == "" {
		w.logger.Info().Msg("background connection sync is disabled")
		return
	}

	w.logger.Info().
		Dur("interval", w.interval).
		Msg("starting background connection sync")

	go w.loop()
}

func (w *syncWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info().Msg("background connection sync stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

// sweep refreshes every syncable connection once. Failures are logged and
// left for the next sweep; the per-connection status transition already
// happened inside the service.
func (w *syncWorker) sweep() {
	connections, err := w.connections.FindSyncable(w.ctx)
	if err != nil {
		w.logger.Err(err).
			Str("func", "syncWorker.sweep").
			Msg("failed to list syncable connections")
		return
	}

	for _, conn := range connections {
		if w.ctx.Err() != nil {
			return
		}

		if _, err := w.service.FetchAccounts(w.ctx, conn.UserID, conn.ID, w.vaultToken); err != nil {
			w.logger.Err(err).
				Str("connection_id", conn.ID).
				Msg("background sync failed")
			continue
		}

		w.logger.Debug().
			Str("connection_id", conn.ID).
			Msg("background sync completed")
	}
}
