package models

import "time"

// EncryptedTwin is the encrypted half of a digital twin. Its ID is shared
// with the external twin identifier chosen by the farm operator. The record
// is created lazily, the first time a twin-update decryption callback fires.
type EncryptedTwin struct {
	// Fingerprint is the encrypted sum of every sensor value folded into the
	// last update.
	Fingerprint Handle `json:"fingerprint"`

	// HealthScore is the encrypted sum of soil moisture values.
	HealthScore Handle `json:"health_score"`

	// LastUpdated is the ledger time of the callback that wrote the handles.
	LastUpdated time.Time `json:"last_updated"`
}

// DecryptedTwin is the revealed view of a twin, written by the decryption
// callback. Revealed is false until the first successful callback.
type DecryptedTwin struct {
	Summary     string `json:"summary"`
	HealthScore int64  `json:"health_score"`
	Revealed    bool   `json:"revealed"`
}

// Twin joins both halves of a twin under its identifier.
type Twin struct {
	ID        int64         `json:"id"`
	Encrypted EncryptedTwin `json:"encrypted"`
	Decrypted DecryptedTwin `json:"decrypted"`
}

// TableName returns the name of the database table associated with Twin.
func (t Twin) TableName() string {
	return "twins"
}

// EncryptedRecommendation holds the encrypted watering, nutrient and light
// aggregates of a recommendation request. Keyed by the twin ID.
type EncryptedRecommendation struct {
	Watering    Handle    `json:"watering"`
	Nutrients   Handle    `json:"nutrients"`
	LightAdjust Handle    `json:"light_adjust"`
	LastUpdated time.Time `json:"last_updated"`
}

// DecryptedRecommendation is the revealed advice of a recommendation.
type DecryptedRecommendation struct {
	Watering    string `json:"watering"`
	Nutrients   string `json:"nutrients"`
	LightAdjust string `json:"light_adjust"`
	Revealed    bool   `json:"revealed"`
}

// Recommendation joins both halves of a recommendation under its twin ID.
type Recommendation struct {
	ID        int64                   `json:"id"`
	Encrypted EncryptedRecommendation `json:"encrypted"`
	Decrypted DecryptedRecommendation `json:"decrypted"`
}

// TableName returns the name of the database table associated with
// Recommendation.
func (r Recommendation) TableName() string {
	return "recommendations"
}
