package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoryNotFound is returned when a query targets a story ID that does
	// not exist in the database.
	ErrStoryNotFound = errors.New("story was not found")

	// ErrVersionNotFound is returned when the singleton version document has
	// not been created yet. Callers typically fall back to the zero-state
	// document from models.NewContentVersion / models.NewAssetVersion.
	ErrVersionNotFound = errors.New("version document was not found")

	// ErrInvalidAssetPath is returned when an asset path fails validation:
	// it escapes the store root, is absolute, or does not start with one of
	// the allowed prefixes.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrAssetNotFound is returned when an asset object does not exist in
	// the store.
	ErrAssetNotFound = errors.New("asset was not found")

	// ErrCachedAssetNotFound is returned by the client cache index when no
	// row exists for the requested asset path.
	ErrCachedAssetNotFound = errors.New("cached asset was not found")

	// ErrCachedStoryNotFound is returned by the client story cache when no
	// row exists for the requested story ID.
	ErrCachedStoryNotFound = errors.New("cached story was not found")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a JSONB column value cannot be
	// encoded or decoded.
	ErrEncodingJSON = errors.New("failed to encode or decode jsonb column")
)
