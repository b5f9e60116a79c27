package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-farm-twin/models"
)

// Ledger runs contract operations atomically. Every write made through the
// repositories handed to fn becomes visible together when fn returns nil,
// and none of them does otherwise. Operations never interleave.
type Ledger interface {
	Atomic(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	Close() error
}

// Repositories is the set of entity stores bound to one ledger operation.
type Repositories struct {
	Readings        ReadingRepository
	Twins           TwinRepository
	Recommendations RecommendationRepository
	Aggregates      AggregateRepository
	Requests        RequestRepository
	Events          EventRepository
	Data            DataRepository
	ACL             ACLRepository
	Counters        CounterRepository
	Users           UserRepository
}

// ReadingRepository stores immutable readings.
type ReadingRepository interface {
	Create(ctx context.Context, reading models.Reading) error
	// Get returns ErrReadingNotFound for unknown IDs.
	Get(ctx context.Context, id int64) (models.Reading, error)
}

// TwinRepository stores both halves of a twin.
type TwinRepository interface {
	// Get returns ErrTwinNotFound before the first callback.
	Get(ctx context.Context, id int64) (models.Twin, error)
	Save(ctx context.Context, twin models.Twin) error
}

// RecommendationRepository stores both halves of a recommendation.
type RecommendationRepository interface {
	Get(ctx context.Context, id int64) (models.Recommendation, error)
	Save(ctx context.Context, rec models.Recommendation) error
}

// AggregateRepository is the aggregate registry.
type AggregateRepository interface {
	// Get returns ErrAggregateNotFound for keys never created.
	Get(ctx context.Context, key string) (models.Aggregate, error)
	// Create returns ErrKeyHashCollision when another key maps to the same
	// hash.
	Create(ctx context.Context, agg models.Aggregate) error
	UpdateHandle(ctx context.Context, key string, handle models.Handle, additions int, updatedAt time.Time) error
	// Keys lists every key in creation order.
	Keys(ctx context.Context) ([]string, error)
	// FindKeyByHash returns ErrAggregateNotFound for unknown hashes.
	FindKeyByHash(ctx context.Context, keyHash int64) (string, error)
}

// RequestRepository is the request correlator's storage.
type RequestRepository interface {
	// Register stores req unconditionally, overwriting any previous entry
	// with the same ID.
	Register(ctx context.Context, req models.PendingRequest) error
	// Get returns ErrRequestNotFound for unknown IDs.
	Get(ctx context.Context, id int64) (models.PendingRequest, error)
	Delete(ctx context.Context, id int64) error
	// List returns up to limit requests with an ID greater than afterID,
	// in ID order.
	List(ctx context.Context, afterID int64, limit int) ([]models.PendingRequest, error)
	// DeleteExpired removes requests whose deadline is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// EventRepository is the append-only event log.
type EventRepository interface {
	Append(ctx context.Context, event models.Event) error
	// List returns up to limit events with Seq > afterSeq in order.
	List(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error)
}

// DataRepository is the per-owner generic key/value store.
type DataRepository interface {
	// Get returns ErrDataNotFound for unset keys.
	Get(ctx context.Context, owner int64, key string) ([]byte, error)
	Put(ctx context.Context, owner int64, key string, value []byte) error
}

// ACLRepository records entity ownership.
type ACLRepository interface {
	// Owner returns 0 for unclaimed entities.
	Owner(ctx context.Context, kind string, id int64) (int64, error)
	Claim(ctx context.Context, kind string, id int64, owner int64) error
}

// CounterRepository mints monotonic sequences. The first value is 1.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

// UserRepository stores contract host accounts.
type UserRepository interface {
	// CreateUser returns ErrLoginAlreadyExists for taken logins.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByLogin returns ErrNoUserWasFound for unknown logins.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// CiphertextStorage is a content-addressed blob store for ciphertexts.
// Writes are idempotent: equal bytes always yield the same handle.
type CiphertextStorage interface {
	Put(ctx context.Context, data []byte) (models.Handle, error)
	// Get returns ErrCiphertextNotFound for unknown handles.
	Get(ctx context.Context, handle models.Handle) ([]byte, error)
}

// WorldState is the key/value view of a chaincode ledger.
type WorldState interface {
	// GetState returns nil, nil for missing keys.
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	DelState(key string) error
}
