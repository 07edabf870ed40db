package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/models"
)

// connectionRepository is the PostgreSQL-backed implementation of
// [ConnectionRepository]. Every public method obtains a context-scoped
// logger via [logger.FromContext] so that all database interactions are
// traced with structured fields (user_id, connection_id, etc.).
type connectionRepository struct {
	*DB
	logger *logger.Logger
}

// NewConnectionRepository constructs a [ConnectionRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewConnectionRepository(db *DB, logger *logger.Logger) ConnectionRepository {
	return &connectionRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *connectionRepository) Create(ctx context.Context, conn models.BankConnection) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, createConnection,
		conn.ID,
		conn.UserID,
		conn.BankID,
		conn.Status,
		conn.Alias,
		conn.AuthDetailsRef,
		conn.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "connectionRepository.Create").
			Str("user_id", conn.UserID).
			Str("bank_id", conn.BankID).
			Msg("failed to insert bank connection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrConnectionNotSaved
	}

	return nil
}

func (c *connectionRepository) FindByID(ctx context.Context, userID, connectionID string) (models.BankConnection, error) {
	log := logger.FromContext(ctx)

	conn, err := scanConnection(c.DB.QueryRowContext(ctx, findConnectionByID, connectionID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.BankConnection{}, ErrConnectionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "connectionRepository.FindByID").
			Str("user_id", userID).
			Str("connection_id", connectionID).
			Msg("failed to query bank connection")
		return models.BankConnection{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return conn, nil
}

// FindWithBank loads a connection joined with its bank registry entry in one
// round trip.
func (c *connectionRepository) FindWithBank(ctx context.Context, userID, connectionID string) (models.BankConnection, models.Bank, error) {
	log := logger.FromContext(ctx)

	var conn models.BankConnection
	var bank models.Bank

	err := c.DB.QueryRowContext(ctx, findConnectionWithBank, connectionID, userID).Scan(
		&conn.ID,
		&conn.UserID,
		&conn.BankID,
		&conn.Status,
		&conn.Alias,
		&conn.LastSync,
		&conn.AuthDetailsRef,
		&conn.CreatedAt,
		&bank.ID,
		&bank.Name,
		&bank.LogoURL,
		&bank.SourceType,
		&bank.ScraperIdentifier,
		&bank.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BankConnection{}, models.Bank{}, ErrConnectionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "connectionRepository.FindWithBank").
			Str("user_id", userID).
			Str("connection_id", connectionID).
			Msg("failed to query bank connection with bank")
		return models.BankConnection{}, models.Bank{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return conn, bank, nil
}

func (c *connectionRepository) FindByUser(ctx context.Context, userID string, filter ConnectionFilter) ([]models.BankConnection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByUserQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "connectionRepository.FindByUser").
			Str("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "connectionRepository.FindByUser").
			Str("user_id", userID).
			Msg("failed to execute query for listing connections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return c.collectConnections(ctx, rows)
}

func (c *connectionRepository) FindSyncable(ctx context.Context) ([]models.BankConnection, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, findSyncableConnections)
	if err != nil {
		log.Err(err).
			Str("func", "connectionRepository.FindSyncable").
			Msg("failed to execute query for syncable connections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return c.collectConnections(ctx, rows)
}

// Activate persists the vault reference and the ACTIVE status in one
// statement so a finalize-login can never leave the two out of step.
func (c *connectionRepository) Activate(ctx context.Context, userID, connectionID, authDetailsRef string) error {
	return c.exec(ctx, "connectionRepository.Activate", activateConnection, authDetailsRef, connectionID, userID)
}

func (c *connectionRepository) UpdateStatus(ctx context.Context, connectionID string, status models.ConnectionStatus) error {
	return c.exec(ctx, "connectionRepository.UpdateStatus", updateConnectionStatus, status, connectionID)
}

func (c *connectionRepository) MarkSynced(ctx context.Context, connectionID string, at time.Time) error {
	return c.exec(ctx, "connectionRepository.MarkSynced", markConnectionSynced, at, connectionID)
}

func (c *connectionRepository) UpdateAlias(ctx context.Context, userID, connectionID, alias string) error {
	return c.exec(ctx, "connectionRepository.UpdateAlias", updateConnectionAlias, alias, connectionID, userID)
}

func (c *connectionRepository) Delete(ctx context.Context, userID, connectionID string) error {
	return c.exec(ctx, "connectionRepository.Delete", deleteConnection, connectionID, userID)
}

// exec runs a single-record mutation and maps a zero-row result to
// [ErrConnectionNotFound].
func (c *connectionRepository) exec(ctx context.Context, caller, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrConnectionNotFound
	}

	return nil
}

func (c *connectionRepository) collectConnections(ctx context.Context, rows *sql.Rows) ([]models.BankConnection, error) {
	log := logger.FromContext(ctx)

	connections := make([]models.BankConnection, 0, 20)

	for rows.Next() {
		conn, scanErr := scanConnection(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "connectionRepository.collectConnections").
				Msg("failed to scan bank connection row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		connections = append(connections, conn)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "connectionRepository.collectConnections").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return connections, nil
}
