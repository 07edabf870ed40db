package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/models"
)

// bankRepository is the PostgreSQL-backed implementation of [BankRepository].
// The bank registry is read-only from this service's point of view.
type bankRepository struct {
	*DB
	logger *logger.Logger
}

// NewBankRepository constructs a [BankRepository] backed by the provided
// database connection and logger.
func NewBankRepository(db *DB, logger *logger.Logger) BankRepository {
	return &bankRepository{
		DB:     db,
		logger: logger,
	}
}

// FindAll returns every bank registry entry, active or not. Callers gate on
// Bank.IsActive themselves: only connection creation cares.
func (b *bankRepository) FindAll(ctx context.Context) ([]models.Bank, error) {
	log := logger.FromContext(ctx)

	rows, err := b.DB.QueryContext(ctx, findAllBanks)
	if err != nil {
		log.Err(err).
			Str("func", "bankRepository.FindAll").
			Msg("failed to execute query for listing banks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	banks := make([]models.Bank, 0, 20)

	for rows.Next() {
		var bank models.Bank

		scanErr := rows.Scan(
			&bank.ID,
			&bank.Name,
			&bank.LogoURL,
			&bank.SourceType,
			&bank.ScraperIdentifier,
			&bank.IsActive,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "bankRepository.FindAll").
				Msg("failed to scan bank row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		banks = append(banks, bank)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bankRepository.FindAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return banks, nil
}

// FindByID returns one bank registry entry or [ErrBankNotFound].
func (b *bankRepository) FindByID(ctx context.Context, bankID string) (models.Bank, error) {
	log := logger.FromContext(ctx)

	var bank models.Bank
	err := b.DB.QueryRowContext(ctx, findBankByID, bankID).Scan(
		&bank.ID,
		&bank.Name,
		&bank.LogoURL,
		&bank.SourceType,
		&bank.ScraperIdentifier,
		&bank.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bank{}, ErrBankNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "bankRepository.FindByID").
			Str("bank_id", bankID).
			Msg("failed to query bank")
		return models.Bank{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return bank, nil
}
