package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/bank-feed/models"
)

const (
	findAllBanks = `SELECT id, name, logo_url, source_type, scraper_identifier, is_active
		FROM banks
		ORDER BY name;`

	findBankByID = `SELECT id, name, logo_url, source_type, scraper_identifier, is_active
		FROM banks
		WHERE id = $1;`

	createConnection = `INSERT INTO bank_connections (
			id,
			user_id,
			bank_id,
			status,
			alias,
			auth_details_ref,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	findConnectionByID = `SELECT id, user_id, bank_id, status, alias, last_sync, auth_details_ref, created_at
		FROM bank_connections
		WHERE id = $1 AND user_id = $2;`

	findConnectionWithBank = `SELECT
			c.id, c.user_id, c.bank_id, c.status, c.alias, c.last_sync, c.auth_details_ref, c.created_at,
			b.id, b.name, b.logo_url, b.source_type, b.scraper_identifier, b.is_active
		FROM bank_connections c
		JOIN banks b ON b.id = c.bank_id
		WHERE c.id = $1 AND c.user_id = $2;`

	findSyncableConnections = `SELECT id, user_id, bank_id, status, alias, last_sync, auth_details_ref, created_at
		FROM bank_connections
		WHERE status = 'ACTIVE' AND auth_details_ref <> '';`

	activateConnection = `UPDATE bank_connections
		SET status = 'ACTIVE', auth_details_ref = $1
		WHERE id = $2 AND user_id = $3;`

	updateConnectionStatus = `UPDATE bank_connections
		SET status = $1
		WHERE id = $2;`

	markConnectionSynced = `UPDATE bank_connections
		SET status = 'ACTIVE', last_sync = $1
		WHERE id = $2;`

	updateConnectionAlias = `UPDATE bank_connections
		SET alias = $1
		WHERE id = $2 AND user_id = $3;`

	deleteConnection = `DELETE FROM bank_connections
		WHERE id = $1 AND user_id = $2;`

	upsertCredential = `INSERT INTO credential_records (user_id, key_type, ciphertext, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key_type)
		DO UPDATE SET ciphertext = EXCLUDED.ciphertext, updated_at = NOW();`

	findCredential = `SELECT user_id, key_type, ciphertext
		FROM credential_records
		WHERE user_id = $1 AND key_type = $2;`
)

// buildFindByUserQuery builds the filtered connection listing dynamically:
// the user scope is always applied, optional filter fields narrow further.
func buildFindByUserQuery(userID string, filter ConnectionFilter) (string, []any, error) {
	builder := sq.Select("id", "user_id", "bank_id", "status", "alias", "last_sync", "auth_details_ref", "created_at").
		From("bank_connections").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		PlaceholderFormat(sq.Dollar)

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.BankID != "" {
		builder = builder.Where(sq.Eq{"bank_id": filter.BankID})
	}

	return builder.ToSql()
}

func scanConnection(row interface{ Scan(...any) error }) (models.BankConnection, error) {
	var conn models.BankConnection
	err := row.Scan(
		&conn.ID,
		&conn.UserID,
		&conn.BankID,
		&conn.Status,
		&conn.Alias,
		&conn.LastSync,
		&conn.AuthDetailsRef,
		&conn.CreatedAt,
	)
	return conn, err
}
