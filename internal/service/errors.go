package service

import "errors"

var (
	// ErrInvalidDataProvided is returned for malformed input that fails
	// basic checks before any state is touched.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when a login's password does not verify.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when a JWT cannot be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned for any token that fails
	// signature, issuer or expiry checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrVersionIsNotSpecified is returned when no application version is
	// configured.
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Contract errors.
var (
	// ErrEmptyReadingList is returned when a twin update or recommendation is
	// requested without readings.
	ErrEmptyReadingList = errors.New("reading list is empty")

	// ErrTooManyReadings is returned when summing the requested readings
	// would exceed the exact-decoding limit of the FHE codec.
	ErrTooManyReadings = errors.New("too many readings for one request")

	// ErrTooManyAdditions is returned when an aggregate accumulator has
	// absorbed the maximum number of deltas.
	ErrTooManyAdditions = errors.New("aggregate accumulator is full")

	// ErrAccessDenied is returned when the caller does not own the twin,
	// reading or aggregate it is acting on.
	ErrAccessDenied = errors.New("access denied")

	// ErrUnknownAggregate is returned when revealing a key that was never
	// created.
	ErrUnknownAggregate = errors.New("unknown aggregate key")

	// ErrUnknownRequest is returned by callbacks whose request ID resolves to
	// nothing (never registered, already consumed or expired) or to a
	// request of another kind.
	ErrUnknownRequest = errors.New("unknown decryption request")

	// ErrInvalidProof is returned by callbacks whose attestation proof does
	// not verify against the request ID and cleartexts.
	ErrInvalidProof = errors.New("invalid decryption proof")

	// ErrInvalidCiphertext is returned for ciphertexts that do not parse
	// under the contract's FHE parameters.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrConcurrentUpdate is returned when an aggregate kept changing under
	// an addition for every retry.
	ErrConcurrentUpdate = errors.New("aggregate was updated concurrently")
)

// Client errors.
var (
	// ErrRegisterOnServer wraps a failed registration call.
	ErrRegisterOnServer = errors.New("error registering on server")

	// ErrLoginOnServer wraps a failed login call.
	ErrLoginOnServer = errors.New("error logging in on server")

	// ErrNotLoggedIn is returned by client commands that need a session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNoPublicKey is returned by client commands that need the FHE public
	// key when none is configured.
	ErrNoPublicKey = errors.New("fhe public key is not loaded")
)
