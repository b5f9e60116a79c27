package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/fhe"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
)

// Counter names.
const (
	seqReadings   = "readings"
	seqRequests   = "requests"
	seqEvents     = "events"
	seqAggregates = "aggregates"
)

// aclTwin is the ACL kind of twins. Recommendations share their twin's ID
// and therefore its owner.
const aclTwin = "twin"

// ProofVerifier checks an attestation proof over a request's cleartexts.
type ProofVerifier interface {
	Verify(requestID int64, cleartexts, proof []byte) error
}

// EventSink receives every event after it has been appended to the log,
// inside the same ledger operation.
type EventSink func(ctx context.Context, event models.Event) error

// Contract holds the state shared by every contract service.
type Contract struct {
	ledger      store.Ledger
	ciphertexts store.CiphertextStorage
	evaluator   *fhe.Evaluator
	verifier    ProofVerifier
	correlator  *RequestCorrelator
	now         func() time.Time
	sink        EventSink
}

// ContractOption customizes a [Contract].
type ContractOption func(*Contract)

// WithClock replaces time.Now. Chaincode passes the transaction timestamp.
func WithClock(now func() time.Time) ContractOption {
	return func(c *Contract) {
		c.now = now
	}
}

// WithEventSink forwards emitted events to sink.
func WithEventSink(sink EventSink) ContractOption {
	return func(c *Contract) {
		c.sink = sink
	}
}

// NewContract builds the shared contract state. A requestTTL of zero makes
// pending requests live until their callback arrives.
func NewContract(ledger store.Ledger, ciphertexts store.CiphertextStorage, evaluator *fhe.Evaluator,
	verifier ProofVerifier, requestTTL time.Duration, opts ...ContractOption) *Contract {
	c := &Contract{
		ledger:      ledger,
		ciphertexts: ciphertexts,
		evaluator:   evaluator,
		verifier:    verifier,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.correlator = NewRequestCorrelator(requestTTL, c.now)

	return c
}

func (c *Contract) clock() time.Time {
	return c.now().UTC()
}

func (c *Contract) emit(ctx context.Context, repos store.Repositories, event models.Event) (models.Event, error) {
	seq, err := repos.Counters.Next(ctx, seqEvents)
	if err != nil {
		return models.Event{}, fmt.Errorf("error minting event sequence: %w", err)
	}

	event.Seq = seq
	event.CreatedAt = c.clock()

	if err = repos.Events.Append(ctx, event); err != nil {
		return models.Event{}, err
	}

	if c.sink != nil {
		if err = c.sink(ctx, event); err != nil {
			return models.Event{}, fmt.Errorf("error publishing event %s: %w", event.Name, err)
		}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*Contract.emit").
		Str("event", string(event.Name)).
		Int64("entity_id", event.EntityID).
		Int64("seq", seq).
		Msg("event emitted")

	return event, nil
}

// storeCiphertext validates raw and writes it to ciphertext storage.
func (c *Contract) storeCiphertext(ctx context.Context, raw []byte) (models.Handle, error) {
	if err := c.evaluator.Validate(raw); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}
	return c.ciphertexts.Put(ctx, raw)
}

// sumHandles homomorphically adds the ciphertexts behind handles and stores
// the result.
func (c *Contract) sumHandles(ctx context.Context, handles []models.Handle) (models.Handle, error) {
	cache := make(map[models.Handle][]byte, len(handles))
	cts := make([][]byte, 0, len(handles))

	for _, h := range handles {
		raw, ok := cache[h]
		if !ok {
			var err error
			if raw, err = c.ciphertexts.Get(ctx, h); err != nil {
				return "", fmt.Errorf("error loading ciphertext %s: %w", h, err)
			}
			cache[h] = raw
		}
		cts = append(cts, raw)
	}

	sum, err := c.evaluator.Sum(cts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}

	return c.ciphertexts.Put(ctx, sum)
}

// checkTwinOwner fails with ErrAccessDenied when twinID is owned by someone
// other than owner. Unclaimed twins pass.
func checkTwinOwner(ctx context.Context, repos store.Repositories, owner, twinID int64) (claimed bool, err error) {
	current, err := repos.ACL.Owner(ctx, aclTwin, twinID)
	if err != nil {
		return false, err
	}
	if current != 0 && current != owner {
		return false, fmt.Errorf("%w: twin %d", ErrAccessDenied, twinID)
	}
	return current != 0, nil
}

// loadOwnedReadings loads readingIDs and checks that each one belongs to
// owner and that twinID is not owned by anybody else.
func (c *Contract) loadOwnedReadings(ctx context.Context, owner, twinID int64, readingIDs []int64) ([]models.Reading, error) {
	readings := make([]models.Reading, 0, len(readingIDs))

	err := c.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		readings = readings[:0]

		if _, err := checkTwinOwner(ctx, repos, owner, twinID); err != nil {
			return err
		}

		for _, id := range readingIDs {
			reading, err := repos.Readings.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("reading %d: %w", id, err)
			}
			if reading.Owner != owner {
				return fmt.Errorf("%w: reading %d", ErrAccessDenied, id)
			}
			readings = append(readings, reading)
		}
		return nil
	})

	return readings, err
}

// registerFold claims twinID for owner when unclaimed, registers a request
// over handles and emits name. Used by twin updates and recommendations.
func (c *Contract) registerFold(ctx context.Context, owner, twinID int64, kind models.RequestKind,
	handles []models.Handle, readingCount int, name models.EventName) (models.RequestReceipt, error) {
	var receipt models.RequestReceipt

	err := c.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		claimed, err := checkTwinOwner(ctx, repos, owner, twinID)
		if err != nil {
			return err
		}
		if !claimed {
			if err = repos.ACL.Claim(ctx, aclTwin, twinID, owner); err != nil {
				return err
			}
		}

		req, err := c.correlator.Open(ctx, repos, models.PendingRequest{
			EntityID:     twinID,
			Kind:         kind,
			Handles:      handles,
			ReadingCount: readingCount,
			Requester:    owner,
		})
		if err != nil {
			return err
		}

		if _, err = c.emit(ctx, repos, models.Event{Name: name, EntityID: twinID, RequestID: req.ID}); err != nil {
			return err
		}

		receipt = models.RequestReceipt{RequestID: req.ID, EntityID: twinID, Tag: req.Tag}
		return nil
	})

	return receipt, err
}

func validateFold(twinID int64, readingIDs []int64, perReading int) error {
	if len(readingIDs) == 0 {
		return ErrEmptyReadingList
	}
	if twinID <= 0 {
		return fmt.Errorf("%w: twin id must be positive", ErrInvalidDataProvided)
	}
	if perReading*len(readingIDs) > fhe.MaxAdditions {
		return fmt.Errorf("%w: %d readings", ErrTooManyReadings, len(readingIDs))
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrTwinNotFound) ||
		errors.Is(err, store.ErrRecommendationNotFound) ||
		errors.Is(err, store.ErrAggregateNotFound)
}
