package store

import "errors"

// Sentinel errors returned by the stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnknownDriver is returned by [NewKeyValueStore] for a driver name
	// it does not support.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrStoreClosed is returned by the memory store after Close.
	ErrStoreClosed = errors.New("store is closed")

	// ErrContainerNotFound is returned when no container with the requested
	// id exists.
	ErrContainerNotFound = errors.New("container was not found")

	// ErrCorruptValue is returned when a stored value cannot be decoded into
	// its expected shape.
	ErrCorruptValue = errors.New("stored value is corrupt")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the sqlite store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan key-value rows")
)
