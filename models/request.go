package models

import "time"

// RequestKind names the payload shape a decryption request expects back.
type RequestKind string

const (
	// KindTwinUpdate expects cleartexts {summary, healthScore}.
	KindTwinUpdate RequestKind = "twin_update"
	// KindRecommendation expects cleartexts {watering, nutrients, lightAdjust}.
	KindRecommendation RequestKind = "recommendation"
	// KindAggregate expects a single numeric cleartext.
	KindAggregate RequestKind = "aggregate"
)

// PendingRequest correlates an asynchronous decryption request with the
// entity that issued it.
//
// EntityID zero is the "absent" sentinel. A request is single-use: the
// callback that consumes it deletes it in the same ledger operation.
type PendingRequest struct {
	// ID is the globally unique, never reused request identifier.
	ID int64 `json:"id"`

	// EntityID is the twin ID, recommendation ID or aggregate key hash.
	EntityID int64 `json:"entity_id"`

	// Tag is the keccak-256 hex digest of Kind. Callbacks compare it against
	// the tag of their own payload shape.
	Tag string `json:"tag"`

	Kind RequestKind `json:"kind"`

	// Handles are the ciphertexts the oracle must decrypt, in payload order.
	Handles []Handle `json:"handles"`

	// ReadingCount is the number of readings folded into Handles. Zero for
	// aggregate requests.
	ReadingCount int `json:"reading_count"`

	// Requester is the user that issued the request.
	Requester int64 `json:"requester"`

	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is zero when requests never expire.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// IsAbsent reports whether the request is the zero "not found" value.
func (r PendingRequest) IsAbsent() bool {
	return r.EntityID == 0
}

// Expired reports whether the request is past its deadline at now.
func (r PendingRequest) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

// TableName returns the name of the database table associated with
// PendingRequest.
func (r PendingRequest) TableName() string {
	return "pending_requests"
}

// RequestReceipt is returned to callers that issue a decryption request.
type RequestReceipt struct {
	RequestID int64  `json:"request_id"`
	EntityID  int64  `json:"entity_id"`
	Tag       string `json:"tag"`
}

// DecryptionCallback is the payload the decryption oracle delivers back to
// the contract.
type DecryptionCallback struct {
	RequestID int64 `json:"request_id"`

	// Cleartexts is a JSON array of the decrypted values, strings or numbers.
	Cleartexts []byte `json:"cleartexts"`

	// Proof is the attestation over (RequestID, Cleartexts).
	Proof []byte `json:"proof"`
}
