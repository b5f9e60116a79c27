package store

import "errors"

// Sentinel errors returned by repositories. Match them with [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when registering a taken login.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches a login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrReadingNotFound is returned for unknown reading IDs.
	ErrReadingNotFound = errors.New("reading was not found")

	// ErrTwinNotFound is returned for twins that were never decrypted.
	ErrTwinNotFound = errors.New("twin was not found")

	// ErrRecommendationNotFound is returned for recommendations that were
	// never decrypted.
	ErrRecommendationNotFound = errors.New("recommendation was not found")

	// ErrAggregateNotFound is returned for unknown aggregate keys or hashes.
	ErrAggregateNotFound = errors.New("aggregate was not found")

	// ErrAggregateExists is returned when creating an existing key.
	ErrAggregateExists = errors.New("aggregate already exists")

	// ErrKeyHashCollision is returned when a new aggregate key hashes to the
	// entity ID of a different key.
	ErrKeyHashCollision = errors.New("aggregate key hash collision")

	// ErrRequestNotFound is returned for unknown pending request IDs.
	ErrRequestNotFound = errors.New("pending request was not found")

	// ErrDataNotFound is returned for unset key/value entries.
	ErrDataNotFound = errors.New("data was not found")

	// ErrAlreadyClaimed is returned when claiming an owned entity.
	ErrAlreadyClaimed = errors.New("entity is already claimed")

	// ErrCiphertextNotFound is returned for unknown ciphertext handles.
	ErrCiphertextNotFound = errors.New("ciphertext was not found")

	// ErrSessionNotFound is returned by SessionFile.Load before the first
	// login and after a logout.
	ErrSessionNotFound = errors.New("no saved session")
)

// Low-level database errors, wrapped around the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails. The
	// transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when a single row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingState is returned when a world-state value is not valid JSON.
	ErrDecodingState = errors.New("failed to decode state value")

	// ErrUnknownBackend is returned by NewStorages for unsupported backends.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
