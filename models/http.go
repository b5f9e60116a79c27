package models

// ReadingIDsRequest is the body of twin update and recommendation requests.
type ReadingIDsRequest struct {
	// ReadingIDs lists the readings to fold into the request. Must not be empty.
	ReadingIDs []int64 `json:"reading_ids"`
}

// AggregateDeltaRequest is the body of an aggregate addition.
type AggregateDeltaRequest struct {
	// Ciphertext is a marshaled BGV encryption of the delta.
	Ciphertext []byte `json:"ciphertext"`
}

// AggregateKeysResponse lists aggregate keys in creation order.
type AggregateKeysResponse struct {
	Keys   []string `json:"keys"`
	Length int      `json:"length"`
}

// KeyByHashResponse is returned by the hash-to-key lookup.
type KeyByHashResponse struct {
	KeyHash int64  `json:"key_hash"`
	Key     string `json:"key"`
}

// EventsResponse is a page of the contract event log.
type EventsResponse struct {
	Events []Event `json:"events"`
	Length int     `json:"length"`
}

// PendingRequestsResponse is the oracle work feed.
type PendingRequestsResponse struct {
	Requests []PendingRequest `json:"requests"`
	Length   int              `json:"length"`
}

// CiphertextResponse carries a stored ciphertext by handle.
type CiphertextResponse struct {
	Handle     Handle `json:"handle"`
	Ciphertext []byte `json:"ciphertext"`
}
