package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/bank-feed/internal/config"
	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/mock"
	"github.com/MKhiriev/bank-feed/internal/source"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/models"
)

type connectionFixture struct {
	banks          *mock.MockBankRepository
	connections    *mock.MockConnectionRepository
	scraperAdapter *mock.MockAdapter
	partnerAdapter *mock.MockAdapter
	vault          *mock.MockClient
	service        ConnectionService
}

func newConnectionFixture(t *testing.T) *connectionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &connectionFixture{
		banks:          mock.NewMockBankRepository(ctrl),
		connections:    mock.NewMockConnectionRepository(ctrl),
		scraperAdapter: mock.NewMockAdapter(ctrl),
		partnerAdapter: mock.NewMockAdapter(ctrl),
		vault:          mock.NewMockClient(ctrl),
	}

	f.scraperAdapter.EXPECT().SourceType().Return(models.SourceTypeScraper).AnyTimes()
	f.partnerAdapter.EXPECT().SourceType().Return(models.SourceTypePartnerAPI).AnyTimes()

	manager, err := source.NewManager(f.scraperAdapter, f.partnerAdapter)
	require.NoError(t, err)

	storages := &store.Storages{
		BankRepository:       f.banks,
		ConnectionRepository: f.connections,
	}
	f.service = NewConnectionService(storages, manager, f.vault, config.App{VaultOrgID: "org-1"}, logger.Nop())

	return f
}

func scraperBank() models.Bank {
	return models.Bank{
		ID:                "bank-1",
		Name:              "Test Bank",
		SourceType:        models.SourceTypeScraper,
		ScraperIdentifier: "testbank",
		IsActive:          true,
	}
}

func pendingConnection() models.BankConnection {
	return models.BankConnection{
		ID:     "conn-1",
		UserID: "user-1",
		BankID: "bank-1",
		Status: models.StatusPendingAuth,
	}
}

func TestCreateConnection(t *testing.T) {
	f := newConnectionFixture(t)

	f.banks.EXPECT().FindByID(gomock.Any(), "bank-1").Return(scraperBank(), nil)

	var created models.BankConnection
	f.connections.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, conn models.BankConnection) error {
			created = conn
			return nil
		})

	conn, err := f.service.Create(context.Background(), "user-1", "bank-1", "daily driver")
	require.NoError(t, err)

	assert.NotEmpty(t, conn.ID)
	assert.Equal(t, models.StatusPendingAuth, conn.Status)
	assert.Equal(t, "daily driver", conn.Alias)
	assert.Empty(t, conn.AuthDetailsRef)
	assert.Equal(t, created, conn)
}

func TestCreateConnectionInactiveBank(t *testing.T) {
	f := newConnectionFixture(t)

	bank := scraperBank()
	bank.IsActive = false
	f.banks.EXPECT().FindByID(gomock.Any(), "bank-1").Return(bank, nil)

	_, err := f.service.Create(context.Background(), "user-1", "bank-1", "")
	require.ErrorIs(t, err, ErrBankInactive)
}

func TestCreateConnectionUnknownBank(t *testing.T) {
	f := newConnectionFixture(t)

	f.banks.EXPECT().FindByID(gomock.Any(), "missing").
		Return(models.Bank{}, store.ErrBankNotFound)

	_, err := f.service.Create(context.Background(), "user-1", "missing", "")
	require.ErrorIs(t, err, store.ErrBankNotFound)
}

func TestInitiateLogin(t *testing.T) {
	f := newConnectionFixture(t)

	f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
		Return(pendingConnection(), scraperBank(), nil)
	f.scraperAdapter.EXPECT().InitiateConnection(gomock.Any(), "user-1").Return(nil, nil)

	payload, err := f.service.InitiateLogin(context.Background(), "user-1", "conn-1")
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestInitiateLoginWrongState(t *testing.T) {
	f := newConnectionFixture(t)

	conn := pendingConnection()
	conn.Status = models.StatusActive
	f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
		Return(conn, scraperBank(), nil)

	_, err := f.service.InitiateLogin(context.Background(), "user-1", "conn-1")
	require.ErrorIs(t, err, ErrStateConflict)
}

func TestFinalizeLogin(t *testing.T) {
	f := newConnectionFixture(t)
	payload := map[string]any{"username": "u1", "password": "p1"}

	f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
		Return(pendingConnection(), scraperBank(), nil)
	f.scraperAdapter.EXPECT().ValidateFinalizePayload(payload).Return(nil)
	f.vault.EXPECT().CreateSecret(gomock.Any(), "conn-1", payload, "vault-tok", "org-1").
		Return("ref-42", nil)
	f.connections.EXPECT().Activate(gomock.Any(), "user-1", "conn-1", "ref-42").Return(nil)

	conn, err := f.service.FinalizeLogin(context.Background(), "user-1", "conn-1", payload, "vault-tok")
	require.NoError(t, err)

	assert.Equal(t, models.StatusActive, conn.Status)
	assert.Equal(t, "ref-42", conn.AuthDetailsRef)
}

func TestFinalizeLoginInvalidPayload(t *testing.T) {
	f := newConnectionFixture(t)
	payload := map[string]any{"username": "u1"}

	verr := source.NewValidationError()
	verr.Add("password", "is required")

	f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
		Return(pendingConnection(), scraperBank(), nil)
	f.scraperAdapter.EXPECT().ValidateFinalizePayload(payload).Return(verr)

	// No vault call and no Activate: the connection stays PENDING_AUTH.
	_, err := f.service.FinalizeLogin(context.Background(), "user-1", "conn-1", payload, "vault-tok")
	require.Error(t, err)

	var got *source.ValidationError
	require.ErrorAs(t, err, &got)
	assert.Contains(t, got.Fields, "password")
}

func TestFinalizeLoginAlreadyActive(t *testing.T) {
	f := newConnectionFixture(t)

	conn := pendingConnection()
	conn.Status = models.StatusActive
	conn.AuthDetailsRef = "ref-1"
	f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
		Return(conn, scraperBank(), nil)

	_, err := f.service.FinalizeLogin(context.Background(), "user-1", "conn-1",
		map[string]any{"username": "u", "password": "p"}, "vault-tok")
	require.ErrorIs(t, err, ErrStateConflict)
}

func activeConnectionWithRef() models.BankConnection {
	conn := pendingConnection()
	conn.Status = models.StatusActive
	conn.AuthDetailsRef = "ref-1"
	return conn
}

func TestFetchAccounts(t *testing.T) {
	f := newConnectionFixture(t)
	conn := activeConnectionWithRef()

	accounts := []models.StandardizedAccount{{ID: "acc-1", Name: "Savings"}}

	f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
		Return(conn, scraperBank(), nil)
	f.scraperAdapter.EXPECT().
		FetchAccounts(gomock.Any(), conn, source.CredentialContext{VaultAccessToken: "vault-tok"}).
		Return(accounts, nil)
	f.connections.EXPECT().MarkSynced(gomock.Any(), "conn-1", gomock.Any()).Return(nil)

	got, err := f.service.FetchAccounts(context.Background(), "user-1", "conn-1", "vault-tok")
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestFetchAccountsSuccessRecoversFromError(t *testing.T) {
	f := newConnectionFixture(t)
	conn := activeConnectionWithRef()
	conn.Status = models.StatusError

	bank := scraperBank()
	bank.SourceType = models.SourceTypePartnerAPI
	bank.ScraperIdentifier = ""

	f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
		Return(conn, bank, nil)
	f.partnerAdapter.EXPECT().
		FetchAccounts(gomock.Any(), conn, source.CredentialContext{VaultAccessToken: "vault-tok"}).
		Return([]models.StandardizedAccount{{ID: "acc-1"}}, nil)

	// MarkSynced restores ACTIVE alongside the LastSync stamp, so a
	// transient upstream failure never leaves the connection stuck in
	// ERROR once a later sync succeeds.
	f.connections.EXPECT().MarkSynced(gomock.Any(), "conn-1", gomock.Any()).Return(nil)

	_, err := f.service.FetchAccounts(context.Background(), "user-1", "conn-1", "vault-tok")
	require.NoError(t, err)
}

func TestFetchAccountsUpstreamFailureMarksError(t *testing.T) {
	f := newConnectionFixture(t)
	conn := activeConnectionWithRef()

	upstream := errors.New("partner api down")
	f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
		Return(conn, scraperBank(), nil)
	f.scraperAdapter.EXPECT().FetchAccounts(gomock.Any(), conn, gomock.Any()).
		Return(nil, upstream)
	f.connections.EXPECT().UpdateStatus(gomock.Any(), "conn-1", models.StatusError).Return(nil)

	_, err := f.service.FetchAccounts(context.Background(), "user-1", "conn-1", "vault-tok")
	require.ErrorIs(t, err, upstream)
}

func TestFetchTransactionsValidationFailureKeepsStatus(t *testing.T) {
	f := newConnectionFixture(t)
	conn := activeConnectionWithRef()

	verr := source.NewValidationError()
	verr.Add("accountId", "is required for partner-api connections")

	f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
		Return(conn, scraperBank(), nil)
	f.scraperAdapter.EXPECT().
		FetchTransactions(gomock.Any(), conn, "", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, verr)

	// No UpdateStatus expectation: a precondition rejection must not
	// disturb the connection.
	_, err := f.service.FetchTransactions(context.Background(), "user-1", "conn-1", "",
		time.Time{}, time.Time{}, "vault-tok")
	require.Error(t, err)
}

func TestFetchAccountsRejectsNotFetchable(t *testing.T) {
	tests := []struct {
		name string
		conn models.BankConnection
	}{
		{name: "pending auth without credentials", conn: pendingConnection()},
		{
			name: "inactive",
			conn: models.BankConnection{
				ID: "conn-1", UserID: "user-1", BankID: "bank-1",
				Status: models.StatusInactive, AuthDetailsRef: "ref-1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newConnectionFixture(t)
			f.connections.EXPECT().FindWithBank(gomock.Any(), "user-1", "conn-1").
				Return(tt.conn, scraperBank(), nil)

			_, err := f.service.FetchAccounts(context.Background(), "user-1", "conn-1", "vault-tok")
			require.ErrorIs(t, err, ErrConnectionNotFetchable)
		})
	}
}

func TestDeactivate(t *testing.T) {
	f := newConnectionFixture(t)

	f.connections.EXPECT().FindByID(gomock.Any(), "user-1", "conn-1").
		Return(activeConnectionWithRef(), nil)
	f.connections.EXPECT().UpdateStatus(gomock.Any(), "conn-1", models.StatusInactive).Return(nil)

	require.NoError(t, f.service.Deactivate(context.Background(), "user-1", "conn-1"))
}

func TestDeleteLeavesVaultAlone(t *testing.T) {
	f := newConnectionFixture(t)

	// Only the repository delete: the vault mock gets no expectations.
	f.connections.EXPECT().Delete(gomock.Any(), "user-1", "conn-1").Return(nil)

	require.NoError(t, f.service.Delete(context.Background(), "user-1", "conn-1"))
}
