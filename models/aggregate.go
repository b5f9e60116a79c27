package models

import "time"

// Aggregate is a named running accumulator of encrypted values.
//
// The accumulator starts as an encryption of zero and every delta is added
// homomorphically. The plaintext total is only ever published through a
// [EventPlainAggregateResult] event, never stored here.
type Aggregate struct {
	// Key is the human readable aggregate name, e.g. "total_water".
	Key string `json:"key"`

	// KeyHash is the numeric entity ID derived from Key. It is what the
	// request correlator stores for aggregate reveal requests.
	KeyHash int64 `json:"key_hash"`

	// Handle is the current accumulator ciphertext.
	Handle Handle `json:"handle"`

	// Owner is the user that created the aggregate.
	Owner int64 `json:"owner"`

	// Additions counts the deltas folded into the accumulator.
	Additions int `json:"additions"`

	// Position is the 1-based creation order of the key.
	Position int64 `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with Aggregate.
func (a Aggregate) TableName() string {
	return "aggregates"
}
