package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBankNotFound is returned when a bank registry lookup matches no row.
	ErrBankNotFound = errors.New("bank was not found")

	// ErrConnectionNotFound is returned when a query targets a bank
	// connection (identified by id and user_id) that does not exist.
	ErrConnectionNotFound = errors.New("bank connection was not found")

	// ErrConnectionNotSaved is returned when an INSERT or UPDATE of a
	// connection completes without error but the number of affected rows is
	// zero, indicating that nothing was actually persisted.
	ErrConnectionNotSaved = errors.New("bank connection was not saved")

	// ErrCredentialNotFound is returned when no encrypted credential record
	// exists for the requested (user_id, key_type) pair.
	ErrCredentialNotFound = errors.New("credential record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
