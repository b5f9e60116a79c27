package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
)

type callbackService struct {
	*Contract
}

// NewCallbackService returns the [CallbackService] of c.
func NewCallbackService(c *Contract) CallbackService {
	return &callbackService{Contract: c}
}

// accept resolves cb.RequestID, checks that it was issued for kind and
// verifies the proof. Nothing is written before accept succeeds.
func (s *callbackService) accept(ctx context.Context, repos store.Repositories, kind models.RequestKind,
	cb models.DecryptionCallback) (models.PendingRequest, error) {
	req, err := s.correlator.Resolve(ctx, repos, cb.RequestID)
	if err != nil {
		return models.PendingRequest{}, err
	}
	if req.IsAbsent() {
		return models.PendingRequest{}, fmt.Errorf("%w: %d", ErrUnknownRequest, cb.RequestID)
	}
	if req.Kind != kind {
		return models.PendingRequest{}, fmt.Errorf("%w: %d was issued for %s", ErrUnknownRequest, cb.RequestID, req.Kind)
	}

	if err = s.verifier.Verify(cb.RequestID, cb.Cleartexts, cb.Proof); err != nil {
		return models.PendingRequest{}, fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}

	return req, nil
}

func handleAt(handles []models.Handle, i int) models.Handle {
	if i < len(handles) {
		return handles[i]
	}
	return ""
}

// HandleTwinCallback writes the revealed {summary, healthScore} of a twin
// update. The twin record is created on its first callback.
func (s *callbackService) HandleTwinCallback(ctx context.Context, cb models.DecryptionCallback) (models.Twin, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*callbackService.HandleTwinCallback").
		Int64("request_id", cb.RequestID).
		Logger()

	var twin models.Twin

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		req, err := s.accept(ctx, repos, models.KindTwinUpdate, cb)
		if err != nil {
			return err
		}

		fields := decodeCleartexts(cb.Cleartexts, 2)
		twin = models.Twin{
			ID: req.EntityID,
			Encrypted: models.EncryptedTwin{
				Fingerprint: handleAt(req.Handles, 0),
				HealthScore: handleAt(req.Handles, 1),
				LastUpdated: s.clock(),
			},
			Decrypted: models.DecryptedTwin{
				Summary:     fields[0],
				HealthScore: parseInt(fields[1]),
				Revealed:    true,
			},
		}
		if err = repos.Twins.Save(ctx, twin); err != nil {
			return err
		}

		if _, err = s.emit(ctx, repos, models.Event{Name: models.EventTwinDecrypted, EntityID: twin.ID, RequestID: req.ID}); err != nil {
			return err
		}

		return s.correlator.Consume(ctx, repos, req.ID)
	})
	if err != nil {
		log.Err(err).Msg("twin callback rejected")
		return models.Twin{}, err
	}

	log.Info().Int64("twin_id", twin.ID).Msg("twin revealed")
	return twin, nil
}

// HandleRecommendationCallback writes the revealed {watering, nutrients,
// lightAdjust} of a recommendation.
func (s *callbackService) HandleRecommendationCallback(ctx context.Context, cb models.DecryptionCallback) (models.Recommendation, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*callbackService.HandleRecommendationCallback").
		Int64("request_id", cb.RequestID).
		Logger()

	var rec models.Recommendation

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		req, err := s.accept(ctx, repos, models.KindRecommendation, cb)
		if err != nil {
			return err
		}

		fields := decodeCleartexts(cb.Cleartexts, 3)
		rec = models.Recommendation{
			ID: req.EntityID,
			Encrypted: models.EncryptedRecommendation{
				Watering:    handleAt(req.Handles, 0),
				Nutrients:   handleAt(req.Handles, 1),
				LightAdjust: handleAt(req.Handles, 2),
				LastUpdated: s.clock(),
			},
			Decrypted: models.DecryptedRecommendation{
				Watering:    fields[0],
				Nutrients:   fields[1],
				LightAdjust: fields[2],
				Revealed:    true,
			},
		}
		if err = repos.Recommendations.Save(ctx, rec); err != nil {
			return err
		}

		if _, err = s.emit(ctx, repos, models.Event{Name: models.EventRecommendationDecrypted, EntityID: rec.ID, RequestID: req.ID}); err != nil {
			return err
		}

		return s.correlator.Consume(ctx, repos, req.ID)
	})
	if err != nil {
		log.Err(err).Msg("recommendation callback rejected")
		return models.Recommendation{}, err
	}

	log.Info().Int64("twin_id", rec.ID).Msg("recommendation revealed")
	return rec, nil
}

// HandleAggregateCallback publishes the plaintext total of an aggregate as a
// PlainAggregateResult event. The value is not stored anywhere else.
func (s *callbackService) HandleAggregateCallback(ctx context.Context, cb models.DecryptionCallback) (models.Event, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*callbackService.HandleAggregateCallback").
		Int64("request_id", cb.RequestID).
		Logger()

	var event models.Event

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		req, err := s.accept(ctx, repos, models.KindAggregate, cb)
		if err != nil {
			return err
		}

		key, err := repos.Aggregates.FindKeyByHash(ctx, req.EntityID)
		if err != nil {
			return fmt.Errorf("%w: hash %d: %w", ErrUnknownAggregate, req.EntityID, err)
		}

		fields := decodeCleartexts(cb.Cleartexts, 1)
		event, err = s.emit(ctx, repos, models.Event{
			Name:      models.EventPlainAggregateResult,
			EntityID:  req.EntityID,
			RequestID: req.ID,
			Key:       key,
			Value:     parseUint(fields[0]),
		})
		if err != nil {
			return err
		}

		return s.correlator.Consume(ctx, repos, req.ID)
	})
	if err != nil {
		log.Err(err).Msg("aggregate callback rejected")
		return models.Event{}, err
	}

	log.Info().Str("key", event.Key).Msg("aggregate revealed")
	return event, nil
}

// decodeCleartexts reads a JSON array of at least n fields. Strings are
// unquoted and any other JSON value is kept as its raw text. Missing
// trailing fields are returned as empty strings, and an undecodable payload
// decodes as n empty fields.
func decodeCleartexts(payload []byte, n int) []string {
	fields := make([]string, n)

	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return fields
	}

	for i := 0; i < n && i < len(raw); i++ {
		var s string
		if err := json.Unmarshal(raw[i], &s); err == nil {
			fields[i] = s
			continue
		}
		if v := strings.TrimSpace(string(raw[i])); v != "null" {
			fields[i] = v
		}
	}

	return fields
}

// parseInt returns 0 for anything that is not a base-10 integer.
func parseInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseUint(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
