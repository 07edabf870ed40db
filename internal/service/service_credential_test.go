package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/bank-feed/internal/crypto"
	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/mock"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/models"
)

func TestStoreCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock.NewMockCredentialRepository(ctrl)
	cipher := mock.NewMockCredentialCipher(ctrl)
	svc := NewCredentialService(records, cipher, logger.Nop())

	cipher.EXPECT().Encrypt("api-key-plain", "user-1").
		Return("ciphertext-1", "secret-1", nil)
	records.EXPECT().Upsert(gomock.Any(), models.EncryptedCredentialRecord{
		UserID:     "user-1",
		KeyType:    models.KeyTypePartnerAPI,
		Ciphertext: "ciphertext-1",
	}).Return(nil)

	secret, err := svc.Store(context.Background(), "user-1", models.KeyTypePartnerAPI, "api-key-plain")
	require.NoError(t, err)
	assert.Equal(t, "secret-1", secret)
}

func TestRetrieveCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock.NewMockCredentialRepository(ctrl)
	cipher := mock.NewMockCredentialCipher(ctrl)
	svc := NewCredentialService(records, cipher, logger.Nop())

	records.EXPECT().Find(gomock.Any(), "user-1", models.KeyTypePartnerAPI).
		Return(models.EncryptedCredentialRecord{
			UserID:     "user-1",
			KeyType:    models.KeyTypePartnerAPI,
			Ciphertext: "ciphertext-1",
		}, nil)
	cipher.EXPECT().Decrypt("ciphertext-1", "secret-1", "user-1").
		Return("api-key-plain", nil)

	plaintext, err := svc.Retrieve(context.Background(), "user-1", models.KeyTypePartnerAPI, "secret-1")
	require.NoError(t, err)
	assert.Equal(t, "api-key-plain", plaintext)
}

func TestRetrieveCredentialNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock.NewMockCredentialRepository(ctrl)
	cipher := mock.NewMockCredentialCipher(ctrl)
	svc := NewCredentialService(records, cipher, logger.Nop())

	records.EXPECT().Find(gomock.Any(), "user-1", models.KeyTypePartnerAPI).
		Return(models.EncryptedCredentialRecord{}, store.ErrCredentialNotFound)

	_, err := svc.Retrieve(context.Background(), "user-1", models.KeyTypePartnerAPI, "secret-1")
	require.ErrorIs(t, err, store.ErrCredentialNotFound)
}

func TestRetrieveCredentialBadSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock.NewMockCredentialRepository(ctrl)
	cipher := mock.NewMockCredentialCipher(ctrl)
	svc := NewCredentialService(records, cipher, logger.Nop())

	records.EXPECT().Find(gomock.Any(), "user-1", models.KeyTypePartnerAPI).
		Return(models.EncryptedCredentialRecord{Ciphertext: "ciphertext-1"}, nil)
	cipher.EXPECT().Decrypt("ciphertext-1", "wrong", "user-1").
		Return("", crypto.ErrTamperedSecret)

	_, err := svc.Retrieve(context.Background(), "user-1", models.KeyTypePartnerAPI, "wrong")
	require.ErrorIs(t, err, crypto.ErrTamperedSecret,
		"a bad secret is tamper, never not-found")
}
