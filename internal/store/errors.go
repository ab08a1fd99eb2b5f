package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrSchoolNotFound is returned when a school lookup by id produces an
	// empty result set.
	ErrSchoolNotFound = errors.New("no school was found")

	// ErrSchoolAlreadyExists is returned when an attempt to register a school
	// fails because a school with the same name already exists.
	ErrSchoolAlreadyExists = errors.New("school already exists")

	// ErrSessionNotFound is returned by the client session repository when
	// no session row has been persisted yet.
	ErrSessionNotFound = errors.New("no session was found")
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
