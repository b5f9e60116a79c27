package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
)

const (
	maxDataKeyLength = 256
	maxDataValueSize = 1 << 20
)

type dataService struct {
	*Contract
}

// NewDataService returns the [DataService] of c.
func NewDataService(c *Contract) DataService {
	return &dataService{Contract: c}
}

func validateDataKey(key string) error {
	if key == "" || len(key) > maxDataKeyLength {
		return fmt.Errorf("%w: data key must be 1..%d bytes", ErrInvalidDataProvided, maxDataKeyLength)
	}
	return nil
}

func validateDataValue(value []byte) error {
	if len(value) > maxDataValueSize {
		return fmt.Errorf("%w: value exceeds %d bytes", ErrInvalidDataProvided, maxDataValueSize)
	}
	return nil
}

func (s *dataService) GetData(ctx context.Context, owner int64, key string) ([]byte, error) {
	if err := validateDataKey(key); err != nil {
		return nil, err
	}

	value := []byte{}
	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		found, err := repos.Data.Get(ctx, owner, key)
		if errors.Is(err, store.ErrDataNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		value = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *dataService) SetData(ctx context.Context, owner int64, key string, value []byte) error {
	if err := validateDataKey(key); err != nil {
		return err
	}
	if err := validateDataValue(value); err != nil {
		return err
	}

	return s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		return repos.Data.Put(ctx, owner, key, value)
	})
}

// AppendRecord writes rec.Value under rec.RecordKey and adds rec.RecordKey to
// the JSON array under rec.IndexKey in one ledger operation. An index that
// does not decode as a string array is replaced.
func (s *dataService) AppendRecord(ctx context.Context, owner int64, rec models.RecordAppend) error {
	if err := validateDataKey(rec.IndexKey); err != nil {
		return err
	}
	if err := validateDataKey(rec.RecordKey); err != nil {
		return err
	}
	if rec.IndexKey == rec.RecordKey {
		return fmt.Errorf("%w: record key equals index key", ErrInvalidDataProvided)
	}
	if err := validateDataValue(rec.Value); err != nil {
		return err
	}

	log := logger.FromContext(ctx).With().
		Str("func", "*dataService.AppendRecord").
		Str("index", rec.IndexKey).
		Logger()

	return s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		var keys []string

		raw, err := repos.Data.Get(ctx, owner, rec.IndexKey)
		switch {
		case errors.Is(err, store.ErrDataNotFound):
		case err != nil:
			return err
		default:
			if err = json.Unmarshal(raw, &keys); err != nil {
				log.Warn().Err(err).Msg("index is not a JSON array, starting a new one")
				keys = nil
			}
		}

		if !slices.Contains(keys, rec.RecordKey) {
			keys = append(keys, rec.RecordKey)
		}

		index, err := json.Marshal(keys)
		if err != nil {
			return err
		}

		if err = repos.Data.Put(ctx, owner, rec.RecordKey, rec.Value); err != nil {
			return err
		}
		return repos.Data.Put(ctx, owner, rec.IndexKey, index)
	})
}
