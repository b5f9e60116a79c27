package models

// Index keys under which the front-end keeps the JSON arrays of record keys.
const (
	SensorIndexKey = "sensor_keys"
	AdviceIndexKey = "advice_keys"
)

// SensorRecord is a plaintext sensor reading kept by the front-end in the
// contract key/value store. It is an application convention on top of
// getData/setData, unrelated to the encrypted [Reading] entity.
type SensorRecord struct {
	ID           string  `json:"id"`
	Timestamp    int64   `json:"timestamp"`
	Location     string  `json:"location,omitempty"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	CO2          float64 `json:"co2"`
	Light        float64 `json:"light"`
	SoilMoisture float64 `json:"soil_moisture"`
}

// AdviceRecord is a plaintext farming advice record kept by the front-end.
type AdviceRecord struct {
	ID          string `json:"id"`
	Timestamp   int64  `json:"timestamp"`
	TwinID      int64  `json:"twin_id,omitempty"`
	Watering    string `json:"watering"`
	Nutrients   string `json:"nutrients"`
	LightAdjust string `json:"light_adjust"`
	Note        string `json:"note,omitempty"`
}

// DataEntry is a single key/value blob of the generic store.
type DataEntry struct {
	Key   string `json:"key"`
	Value []byte `json:"value"`
}

// RecordAppend writes Value under RecordKey and appends RecordKey to the JSON
// array stored under IndexKey, atomically.
type RecordAppend struct {
	IndexKey  string `json:"index_key"`
	RecordKey string `json:"record_key"`
	Value     []byte `json:"value"`
}
