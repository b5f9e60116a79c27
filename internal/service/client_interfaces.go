package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-farm-twin/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionStore persists the client's login between runs.
type SessionStore interface {
	// Load returns store.ErrSessionNotFound when nothing is saved.
	Load() (models.Session, error)
	Save(session models.Session) error
	Clear() error
}

// ClientAuthService registers and logs in against the contract host and
// keeps the session token in a [SessionStore].
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) (models.Session, error)
	Login(ctx context.Context, user models.User) (models.Session, error)
	Logout(ctx context.Context) error
	// RestoreSession loads the saved session and hands its token to the
	// adapter. Returns ErrNotLoggedIn when there is none.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// ClientFarmService encrypts sensor values and drives the contract's
// request/callback flows. Plaintext never leaves the client.
type ClientFarmService interface {
	SubmitReading(ctx context.Context, reading models.PlainReading) (models.Reading, error)
	RequestTwinUpdate(ctx context.Context, twinID int64, readingIDs []int64) (models.RequestReceipt, error)
	GetTwin(ctx context.Context, twinID int64) (models.Twin, error)
	RequestRecommendation(ctx context.Context, twinID int64, readingIDs []int64) (models.RequestReceipt, error)
	GetRecommendation(ctx context.Context, twinID int64) (models.Recommendation, error)
	AddToAggregate(ctx context.Context, key string, value uint64) (models.Aggregate, error)
	RequestAggregateReveal(ctx context.Context, key string) (models.RequestReceipt, error)
	AggregateKeys(ctx context.Context) ([]string, error)
	Events(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error)
}

// ClientRecordsService keeps plaintext sensor and advice records in the
// contract's key/value store. Each record is stored under its own key and
// enumerated through a JSON array of keys.
type ClientRecordsService interface {
	AddSensorRecord(ctx context.Context, rec models.SensorRecord) (models.SensorRecord, error)
	AddAdviceRecord(ctx context.Context, rec models.AdviceRecord) (models.AdviceRecord, error)
	// SensorRecords returns the records sorted by timestamp. Read and
	// decode failures are logged and yield fewer (or no) records, never an
	// error.
	SensorRecords(ctx context.Context) []models.SensorRecord
	AdviceRecords(ctx context.Context) []models.AdviceRecord
}

// ClientEventWatchJob polls the event log in the background and hands new
// events to a callback.
type ClientEventWatchJob interface {
	// Start stops any running job and begins polling every interval,
	// 5 seconds when interval is not positive. Only events after afterSeq
	// are delivered.
	Start(ctx context.Context, afterSeq int64, interval time.Duration, onEvents func([]models.Event))

	// Stop cancels the job and waits for it to exit.
	Stop()
}

// Encryptor encrypts a single sensor value under the farm's FHE public key.
// *fhe.Encryptor implements it.
type Encryptor interface {
	Encrypt(v uint64) ([]byte, error)
}
