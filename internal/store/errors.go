package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrHostnameAlreadyRegistered is returned when a registration targets a
	// hostname that already has a server record.
	ErrHostnameAlreadyRegistered = errors.New("hostname already registered")

	// ErrServerNotFound is returned when a query expected to match a server
	// record produces an empty result set.
	ErrServerNotFound = errors.New("server was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when reading a result set into a model
	// fails.
	ErrScanningRows = errors.New("error scanning sql rows")
)
