package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. Ciphertexts are opaque here: encryption and
// decryption happen strictly in the crypto layer.
type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert stores record, overwriting any previous ciphertext for the same
// (user_id, key_type) pair. The ON CONFLICT clause enforces the at-most-one
// active record invariant at the schema level.
func (r *credentialRepository) Upsert(ctx context.Context, record models.EncryptedCredentialRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertCredential,
		record.UserID,
		record.KeyType,
		record.Ciphertext,
	)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Upsert").
			Str("user_id", record.UserID).
			Str("key_type", string(record.KeyType)).
			Msg("failed to upsert credential record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Find returns the stored record or [ErrCredentialNotFound]. A missing
// record is a distinct condition from a tampered secret; callers must keep
// the two apart.
func (r *credentialRepository) Find(ctx context.Context, userID string, keyType models.KeyType) (models.EncryptedCredentialRecord, error) {
	log := logger.FromContext(ctx)

	var record models.EncryptedCredentialRecord
	err := r.DB.QueryRowContext(ctx, findCredential, userID, keyType).Scan(
		&record.UserID,
		&record.KeyType,
		&record.Ciphertext,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedCredentialRecord{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Find").
			Str("user_id", userID).
			Str("key_type", string(keyType)).
			Msg("failed to query credential record")
		return models.EncryptedCredentialRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}
