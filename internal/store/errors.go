package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a username or e-mail is taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrInviteCodeNotFound is returned when no active, unexpired invite code
	// with remaining uses matches.
	ErrInviteCodeNotFound = errors.New("usable invite code was not found")

	// ErrInviteCodeAlreadyExists is returned when creating a duplicate code.
	ErrInviteCodeAlreadyExists = errors.New("invite code already exists")

	// ErrSessionNotFound is returned when no active, unexpired session holds
	// the refresh token.
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrResearchNotFound is returned when a research result id does not exist.
	ErrResearchNotFound = errors.New("research result was not found")

	// ErrInvalidField is returned when a column outside the editable
	// allow-list reaches the query builders.
	ErrInvalidField = errors.New("field is not editable")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
