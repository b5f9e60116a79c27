package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-farm-twin/internal/fhe"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

const (
	maxAggregateKeyLength = 256
	addAttempts           = 5
)

type aggregateService struct {
	*Contract
}

// NewAggregateService returns the [AggregateService] of c.
func NewAggregateService(c *Contract) AggregateService {
	return &aggregateService{Contract: c}
}

func validateAggregateKey(key string) error {
	if key == "" || len(key) > maxAggregateKeyLength {
		return fmt.Errorf("%w: aggregate key must be 1..%d bytes", ErrInvalidDataProvided, maxAggregateKeyLength)
	}
	return nil
}

// AddToAggregate adds delta to the accumulator under key. A new key starts
// from the encryption of zero and is appended to the key list once.
//
// The homomorphic addition runs outside the ledger operation; the result is
// committed only if the accumulator did not change meanwhile, otherwise the
// addition is redone.
func (s *aggregateService) AddToAggregate(ctx context.Context, owner int64, key string, delta []byte) (models.Aggregate, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*aggregateService.AddToAggregate").
		Str("key", key).
		Logger()

	if err := validateAggregateKey(key); err != nil {
		return models.Aggregate{}, err
	}

	deltaHandle, err := s.storeCiphertext(ctx, delta)
	if err != nil {
		return models.Aggregate{}, err
	}

	for attempt := 0; attempt < addAttempts; attempt++ {
		current, exists, err := s.snapshot(ctx, key)
		if err != nil {
			return models.Aggregate{}, err
		}
		if exists && current.Owner != owner {
			return models.Aggregate{}, fmt.Errorf("%w: aggregate %q", ErrAccessDenied, key)
		}
		if current.Additions >= fhe.MaxAdditions {
			return models.Aggregate{}, fmt.Errorf("%w: %q", ErrTooManyAdditions, key)
		}

		base := current.Handle
		if !exists {
			zero, err := s.evaluator.Zero()
			if err != nil {
				return models.Aggregate{}, err
			}
			if base, err = s.ciphertexts.Put(ctx, zero); err != nil {
				return models.Aggregate{}, err
			}
		}

		sum, err := s.sumHandles(ctx, []models.Handle{base, deltaHandle})
		if err != nil {
			log.Err(err).Msg("error adding delta")
			return models.Aggregate{}, err
		}

		agg, err := s.commitAddition(ctx, owner, key, current, exists, sum)
		if errors.Is(err, ErrConcurrentUpdate) {
			log.Debug().Int("attempt", attempt).Msg("aggregate changed, redoing addition")
			continue
		}
		if err != nil {
			log.Err(err).Msg("error committing addition")
			return models.Aggregate{}, err
		}

		return agg, nil
	}

	return models.Aggregate{}, fmt.Errorf("%w: %q", ErrConcurrentUpdate, key)
}

func (s *aggregateService) snapshot(ctx context.Context, key string) (models.Aggregate, bool, error) {
	var agg models.Aggregate
	exists := true

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		found, err := repos.Aggregates.Get(ctx, key)
		if errors.Is(err, store.ErrAggregateNotFound) {
			exists = false
			return nil
		}
		agg = found
		return err
	})

	return agg, exists, err
}

func (s *aggregateService) commitAddition(ctx context.Context, owner int64, key string,
	seen models.Aggregate, existed bool, sum models.Handle) (models.Aggregate, error) {
	var result models.Aggregate

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		now := s.clock()

		current, err := repos.Aggregates.Get(ctx, key)
		switch {
		case errors.Is(err, store.ErrAggregateNotFound):
			if existed {
				return ErrConcurrentUpdate
			}

			position, err := repos.Counters.Next(ctx, seqAggregates)
			if err != nil {
				return err
			}
			result = models.Aggregate{
				Key:       key,
				KeyHash:   utils.EntityIDFromKey(key),
				Handle:    sum,
				Owner:     owner,
				Additions: 1,
				Position:  position,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err = repos.Aggregates.Create(ctx, result); err != nil {
				if errors.Is(err, store.ErrAggregateExists) {
					return ErrConcurrentUpdate
				}
				return err
			}
		case err != nil:
			return err
		default:
			if !existed || current.Handle != seen.Handle || current.Additions != seen.Additions {
				return ErrConcurrentUpdate
			}
			result = current
			result.Handle = sum
			result.Additions++
			result.UpdatedAt = now
			if err = repos.Aggregates.UpdateHandle(ctx, key, sum, result.Additions, now); err != nil {
				return err
			}
		}

		_, err = s.emit(ctx, repos, models.Event{Name: models.EventAggregateUpdated, EntityID: result.KeyHash, Key: key})
		return err
	})

	return result, err
}

// RequestAggregateReveal opens a decryption request for the accumulator
// under key. The entity ID of the request is the key's hash.
func (s *aggregateService) RequestAggregateReveal(ctx context.Context, owner int64, key string) (models.RequestReceipt, error) {
	var receipt models.RequestReceipt

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		agg, err := repos.Aggregates.Get(ctx, key)
		if errors.Is(err, store.ErrAggregateNotFound) {
			return fmt.Errorf("%w: %q", ErrUnknownAggregate, key)
		}
		if err != nil {
			return err
		}
		if agg.Owner != owner {
			return fmt.Errorf("%w: aggregate %q", ErrAccessDenied, key)
		}

		req, err := s.correlator.Open(ctx, repos, models.PendingRequest{
			EntityID:  agg.KeyHash,
			Kind:      models.KindAggregate,
			Handles:   []models.Handle{agg.Handle},
			Requester: owner,
		})
		if err != nil {
			return err
		}

		if _, err = s.emit(ctx, repos, models.Event{
			Name:      models.EventAggregateRevealRequested,
			EntityID:  agg.KeyHash,
			RequestID: req.ID,
			Key:       key,
		}); err != nil {
			return err
		}

		receipt = models.RequestReceipt{RequestID: req.ID, EntityID: agg.KeyHash, Tag: req.Tag}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*aggregateService.RequestAggregateReveal").Str("key", key).Msg("error requesting reveal")
		return models.RequestReceipt{}, err
	}

	return receipt, nil
}

func (s *aggregateService) FindKeyByHash(ctx context.Context, keyHash int64) (string, error) {
	var key string
	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		key, err = repos.Aggregates.FindKeyByHash(ctx, keyHash)
		return err
	})
	return key, err
}

func (s *aggregateService) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		keys, err = repos.Aggregates.Keys(ctx)
		return err
	})
	return keys, err
}

func (s *aggregateService) GetAggregate(ctx context.Context, key string) (models.Aggregate, error) {
	var agg models.Aggregate
	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		agg, err = repos.Aggregates.Get(ctx, key)
		return err
	})
	return agg, err
}
