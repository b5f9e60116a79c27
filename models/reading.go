package models

import "time"

// Handle is the content address of a stored FHE ciphertext: the lowercase
// hex SHA-256 digest of the marshaled ciphertext bytes. Handles are opaque to
// the contract; only the evaluator and the decryption oracle look behind them.
type Handle string

// String implements [fmt.Stringer].
func (h Handle) String() string {
	return string(h)
}

// IsZero reports whether the handle is unset.
func (h Handle) IsZero() bool {
	return h == ""
}

// ReadingCiphertexts carries the six encrypted sensor values of one reading
// as submitted by the client. Every field holds a marshaled BGV ciphertext.
type ReadingCiphertexts struct {
	Timestamp    []byte `json:"timestamp"`
	Temperature  []byte `json:"temperature"`
	Humidity     []byte `json:"humidity"`
	CO2          []byte `json:"co2"`
	Light        []byte `json:"light"`
	SoilMoisture []byte `json:"soil_moisture"`
}

// All returns the six ciphertexts in storage order.
func (c ReadingCiphertexts) All() [][]byte {
	return [][]byte{c.Timestamp, c.Temperature, c.Humidity, c.CO2, c.Light, c.SoilMoisture}
}

// Reading is an immutable batch of encrypted sensor values. It is created on
// submission and is never mutated or deleted afterwards.
type Reading struct {
	// ID is the ledger-assigned identifier of the reading.
	ID int64 `json:"id"`

	// Owner is the user that submitted the reading. Only the owner may fold
	// the reading into a twin or recommendation request.
	Owner int64 `json:"owner"`

	Timestamp    Handle `json:"timestamp"`
	Temperature  Handle `json:"temperature"`
	Humidity     Handle `json:"humidity"`
	CO2          Handle `json:"co2"`
	Light        Handle `json:"light"`
	SoilMoisture Handle `json:"soil_moisture"`

	// SubmittedAt is the ledger time of the submission.
	SubmittedAt time.Time `json:"submitted_at"`
}

// Handles returns the six ciphertext handles in storage order.
func (r Reading) Handles() []Handle {
	return []Handle{r.Timestamp, r.Temperature, r.Humidity, r.CO2, r.Light, r.SoilMoisture}
}

// TableName returns the name of the database table associated with Reading.
func (r Reading) TableName() string {
	return "readings"
}

// PlainReading is a sensor reading before encryption on the client. Values
// are non-negative integers in sensor units: seconds since the epoch,
// tenths of a degree Celsius, percent relative humidity, ppm, lux and
// percent soil moisture.
type PlainReading struct {
	Timestamp    uint64 `json:"timestamp"`
	Temperature  uint64 `json:"temperature"`
	Humidity     uint64 `json:"humidity"`
	CO2          uint64 `json:"co2"`
	Light        uint64 `json:"light"`
	SoilMoisture uint64 `json:"soil_moisture"`
}

// Values returns the six values in storage order.
func (p PlainReading) Values() []uint64 {
	return []uint64{p.Timestamp, p.Temperature, p.Humidity, p.CO2, p.Light, p.SoilMoisture}
}
