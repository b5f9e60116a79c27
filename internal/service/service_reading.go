package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
)

type readingService struct {
	*Contract
}

// NewReadingService returns the [ReadingService] of c.
func NewReadingService(c *Contract) ReadingService {
	return &readingService{Contract: c}
}

// SubmitReading stores the six ciphertexts and records an immutable reading
// owned by owner.
func (s *readingService) SubmitReading(ctx context.Context, owner int64, cts models.ReadingCiphertexts) (models.Reading, error) {
	log := logger.FromContext(ctx)

	raw := cts.All()
	handles := make([]models.Handle, len(raw))
	for i, ct := range raw {
		h, err := s.storeCiphertext(ctx, ct)
		if err != nil {
			log.Err(err).Str("func", "*readingService.SubmitReading").Int("field", i).Msg("error storing reading ciphertext")
			return models.Reading{}, err
		}
		handles[i] = h
	}

	reading := models.Reading{
		Owner:        owner,
		Timestamp:    handles[0],
		Temperature:  handles[1],
		Humidity:     handles[2],
		CO2:          handles[3],
		Light:        handles[4],
		SoilMoisture: handles[5],
	}

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		id, err := repos.Counters.Next(ctx, seqReadings)
		if err != nil {
			return fmt.Errorf("error minting reading id: %w", err)
		}

		reading.ID = id
		reading.SubmittedAt = s.clock()

		if err = repos.Readings.Create(ctx, reading); err != nil {
			return err
		}

		_, err = s.emit(ctx, repos, models.Event{Name: models.EventReadingSubmitted, EntityID: id})
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*readingService.SubmitReading").Msg("error submitting reading")
		return models.Reading{}, err
	}

	return reading, nil
}

func (s *readingService) GetReading(ctx context.Context, owner, readingID int64) (models.Reading, error) {
	var reading models.Reading

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		reading, err = repos.Readings.Get(ctx, readingID)
		return err
	})
	if err != nil {
		return models.Reading{}, err
	}

	if reading.Owner != owner {
		return models.Reading{}, fmt.Errorf("%w: reading %d", ErrAccessDenied, readingID)
	}

	return reading, nil
}
