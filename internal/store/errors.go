package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because an account with the same email is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrOwnerNotFound is returned when an item insert or update references
	// an owner id that does not exist in the users table.
	ErrOwnerNotFound = errors.New("item owner was not found")

	// ErrDuplicateRecord is returned by the generic repository when an
	// INSERT or UPDATE violates a unique constraint. Entity-specific
	// repositories translate it into a more precise sentinel where one
	// exists (see ErrEmailAlreadyExists).
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrRecordVanished is returned when an UPDATE targets a row that was
	// loaded earlier in the request but no longer exists.
	ErrRecordVanished = errors.New("record no longer exists")
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
