package service

import (
	"context"

	"github.com/MKhiriev/go-farm-twin/models"
)

// AuthService registers contract host accounts and issues their tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ReadingService accepts encrypted sensor readings.
type ReadingService interface {
	SubmitReading(ctx context.Context, owner int64, cts models.ReadingCiphertexts) (models.Reading, error)
	GetReading(ctx context.Context, owner, readingID int64) (models.Reading, error)
}

// TwinService requests and reads digital twin decryptions.
type TwinService interface {
	RequestTwinUpdate(ctx context.Context, owner, twinID int64, readingIDs []int64) (models.RequestReceipt, error)
	// GetTwin returns a zero, unrevealed twin before the first callback.
	GetTwin(ctx context.Context, twinID int64) (models.Twin, error)
}

// RecommendationService requests and reads farming recommendations.
type RecommendationService interface {
	RequestRecommendation(ctx context.Context, owner, twinID int64, readingIDs []int64) (models.RequestReceipt, error)
	GetRecommendation(ctx context.Context, twinID int64) (models.Recommendation, error)
}

// AggregateService is the aggregate registry.
type AggregateService interface {
	AddToAggregate(ctx context.Context, owner int64, key string, delta []byte) (models.Aggregate, error)
	RequestAggregateReveal(ctx context.Context, owner int64, key string) (models.RequestReceipt, error)
	FindKeyByHash(ctx context.Context, keyHash int64) (string, error)
	Keys(ctx context.Context) ([]string, error)
	GetAggregate(ctx context.Context, key string) (models.Aggregate, error)
}

// CallbackService applies decryption results. Every handler resolves the
// request, verifies the proof, decodes the cleartexts, writes the entity,
// emits an event and consumes the request in one ledger operation.
type CallbackService interface {
	HandleTwinCallback(ctx context.Context, cb models.DecryptionCallback) (models.Twin, error)
	HandleRecommendationCallback(ctx context.Context, cb models.DecryptionCallback) (models.Recommendation, error)
	HandleAggregateCallback(ctx context.Context, cb models.DecryptionCallback) (models.Event, error)
}

// OracleFeedService exposes what the decryption oracle needs: live pending
// requests and the ciphertexts they reference.
type OracleFeedService interface {
	PendingRequests(ctx context.Context, afterID int64, limit int) ([]models.PendingRequest, error)
	Ciphertext(ctx context.Context, handle models.Handle) ([]byte, error)
}

// EventService reads the event log.
type EventService interface {
	List(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error)
}

// DataService is the front-end key/value store.
type DataService interface {
	// GetData returns an empty value for unset keys.
	GetData(ctx context.Context, owner int64, key string) ([]byte, error)
	SetData(ctx context.Context, owner int64, key string, value []byte) error
	// AppendRecord stores the record and appends its key to the JSON index
	// atomically.
	AppendRecord(ctx context.Context, owner int64, rec models.RecordAppend) error
}

// MaintenanceService performs housekeeping on contract state.
type MaintenanceService interface {
	PruneExpiredRequests(ctx context.Context) (int, error)
}
