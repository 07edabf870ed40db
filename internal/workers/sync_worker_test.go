// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/bank-feed/internal/config"
	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/mock"
	"github.com/MKhiriev/bank-feed/models"
)

func TestSyncWorker_SweepRefreshesEveryConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mock.NewMockConnectionRepository(ctrl)
	connectionService := mock.NewMockConnectionService(ctrl)

	ctx := context.Background()
	syncable := []models.BankConnection{
		{ID: "conn-1", UserID: "user-1"},
		{ID: "conn-2", UserID: "user-2"},
	}

	connections.EXPECT().FindSyncable(gomock.Any()).Return(syncable, nil)
	connectionService.EXPECT().
		FetchAccounts(gomock.Any(), "user-1", "conn-1", "machine-token").
		Return(nil, nil)
	connectionService.EXPECT().
		FetchAccounts(gomock.Any(), "user-2", "conn-2", "machine-token").
		Return(nil, nil)

	w := &syncWorker{
		connections: connections,
		service:     connectionService,
		interval:    time.Minute,
		vaultToken:  "machine-token",
		ctx:         ctx,
		logger:      logger.Nop(),
	}

	w.sweep()
}

func TestSyncWorker_SweepContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mock.NewMockConnectionRepository(ctrl)
	connectionService := mock.NewMockConnectionService(ctrl)

	syncable := []models.BankConnection{
		{ID: "conn-1", UserID: "user-1"},
		{ID: "conn-2", UserID: "user-1"},
	}

	connections.EXPECT().FindSyncable(gomock.Any()).Return(syncable, nil)
	connectionService.EXPECT().
		FetchAccounts(gomock.Any(), "user-1", "conn-1", "machine-token").
		Return(nil, errors.New("upstream is down"))
	connectionService.EXPECT().
		FetchAccounts(gomock.Any(), "user-1", "conn-2", "machine-token").
		Return(nil, nil)

	w := &syncWorker{
		connections: connections,
		service:     connectionService,
		interval:    time.Minute,
		vaultToken:  "machine-token",
		ctx:         context.Background(),
		logger:      logger.Nop(),
	}

	w.sweep()
}

func TestSyncWorker_SweepListFailureSkipsFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mock.NewMockConnectionRepository(ctrl)
	connectionService := mock.NewMockConnectionService(ctrl)

	connections.EXPECT().FindSyncable(gomock.Any()).Return(nil, errors.New("db is down"))

	w := &syncWorker{
		connections: connections,
		service:     connectionService,
		interval:    time.Minute,
		vaultToken:  "machine-token",
		ctx:         context.Background(),
		logger:      logger.Nop(),
	}

	w.sweep()
}

func TestSyncWorker_SweepStopsWhenContextIsCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mock.NewMockConnectionRepository(ctrl)
	connectionService := mock.NewMockConnectionService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	syncable := []models.BankConnection{
		{ID: "conn-1", UserID: "user-1"},
		{ID: "conn-2", UserID: "user-1"},
	}

	connections.EXPECT().FindSyncable(gomock.Any()).Return(syncable, nil)
	connectionService.EXPECT().
		FetchAccounts(gomock.Any(), "user-1", "conn-1", "machine-token").
		DoAndReturn(func(context.Context, string, string, string) ([]models.StandardizedAccount, error) {
			cancel()
			return nil, nil
		})

	w := &syncWorker{
		connections: connections,
		service:     connectionService,
		interval:    time.Minute,
		vaultToken:  "machine-token",
		ctx:         ctx,
		logger:      logger.Nop(),
	}

	w.sweep()
}

func TestSyncWorker_RunDisabledWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mock.NewMockConnectionRepository(ctrl)
	connectionService := mock.NewMockConnectionService(ctrl)

	cfg := config.Workers{SyncInterval: time.Minute, VaultAccessToken: ""}
	w := NewSyncWorker(context.Background(), connections, connectionService, cfg, logger.Nop())

	// No FindSyncable expectation: the sweep loop must never start.
	w.Run()
	time.Sleep(20 * time.Millisecond)
}

func TestSyncWorker_RunDisabledWithoutInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mock.NewMockConnectionRepository(ctrl)
	connectionService := mock.NewMockConnectionService(ctrl)

	cfg := config.Workers{SyncInterval: 0, VaultAccessToken: "machine-token"}
	w := NewSyncWorker(context.Background(), connections, connectionService, cfg, logger.Nop())

	w.Run()
	time.Sleep(20 * time.Millisecond)
}

func TestSyncWorker_RunSweepsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mock.NewMockConnectionRepository(ctrl)
	connectionService := mock.NewMockConnectionService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	swept := make(chan struct{})
	connections.EXPECT().FindSyncable(gomock.Any()).
		DoAndReturn(func(context.Context) ([]models.BankConnection, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return nil, nil
		}).
		MinTimes(1)

	cfg := config.Workers{SyncInterval: 10 * time.Millisecond, VaultAccessToken: "machine-token"}
	w := NewSyncWorker(ctx, connections, connectionService, cfg, logger.Nop())
	w.Run()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		assert.Fail(t, "expected at least one sweep within two seconds")
	}
	cancel()
}
