// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bank-feed/internal/crypto"
	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/models"
)

type credentialService struct {
	records store.CredentialRepository
	cipher  crypto.CredentialCipher
	logger  *logger.Logger
}

// NewCredentialService constructs the [CredentialService] over the record
// repository and the user-scoped cipher.
func NewCredentialService(records store.CredentialRepository, cipher crypto.CredentialCipher, log *logger.Logger) CredentialService {
	return &credentialService{
		records: records,
		cipher:  cipher,
		logger:  log,
	}
}

// Store implements [CredentialService]. The plaintext is gone once this
// returns: only the ciphertext is persisted and only the caller holds the
// secret.
func (s *credentialService) Store(ctx context.Context, userID string, keyType models.KeyType, plaintext string) (string, error) {
	ciphertext, secret, err := s.cipher.Encrypt(plaintext, userID)
	if err != nil {
		return "", err
	}

	record := models.EncryptedCredentialRecord{
		UserID:     userID,
		KeyType:    keyType,
		Ciphertext: ciphertext,
	}
	if err = s.records.Upsert(ctx, record); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info().
		Str("key_type", string(keyType)).
		Msg("credential stored")

	return secret, nil
}

// Retrieve implements [CredentialService].
func (s *credentialService) Retrieve(ctx context.Context, userID string, keyType models.KeyType, secret string) (string, error) {
	record, err := s.records.Find(ctx, userID, keyType)
	if err != nil {
		return "", err
	}

	return s.cipher.Decrypt(record.Ciphertext, secret, userID)
}
