package service

import (
	"context"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
)

type twinService struct {
	*Contract
}

// NewTwinService returns the [TwinService] of c.
func NewTwinService(c *Contract) TwinService {
	return &twinService{Contract: c}
}

// RequestTwinUpdate folds the readings into two encrypted sums and opens a
// decryption request for twinID:
//
//	fingerprint = sum of temperature, humidity, CO2, light and soil moisture
//	health      = sum of soil moisture
//
// The first successful request claims the twin for owner.
func (s *twinService) RequestTwinUpdate(ctx context.Context, owner, twinID int64, readingIDs []int64) (models.RequestReceipt, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*twinService.RequestTwinUpdate").
		Int64("twin_id", twinID).
		Logger()

	if err := validateFold(twinID, readingIDs, 5); err != nil {
		return models.RequestReceipt{}, err
	}

	readings, err := s.loadOwnedReadings(ctx, owner, twinID, readingIDs)
	if err != nil {
		log.Err(err).Msg("error loading readings")
		return models.RequestReceipt{}, err
	}

	all := make([]models.Handle, 0, 5*len(readings))
	soil := make([]models.Handle, 0, len(readings))
	for _, r := range readings {
		all = append(all, r.Temperature, r.Humidity, r.CO2, r.Light, r.SoilMoisture)
		soil = append(soil, r.SoilMoisture)
	}

	fingerprint, err := s.sumHandles(ctx, all)
	if err != nil {
		log.Err(err).Msg("error computing fingerprint")
		return models.RequestReceipt{}, err
	}
	health, err := s.sumHandles(ctx, soil)
	if err != nil {
		log.Err(err).Msg("error computing health score")
		return models.RequestReceipt{}, err
	}

	receipt, err := s.registerFold(ctx, owner, twinID, models.KindTwinUpdate,
		[]models.Handle{fingerprint, health}, len(readings), models.EventTwinUpdateRequested)
	if err != nil {
		log.Err(err).Msg("error registering twin update")
		return models.RequestReceipt{}, err
	}

	log.Info().Int64("request_id", receipt.RequestID).Int("readings", len(readings)).Msg("twin update requested")
	return receipt, nil
}

func (s *twinService) GetTwin(ctx context.Context, twinID int64) (models.Twin, error) {
	twin := models.Twin{ID: twinID}

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		found, err := repos.Twins.Get(ctx, twinID)
		if err != nil {
			return err
		}
		twin = found
		return nil
	})
	if err != nil && !isNotFound(err) {
		return models.Twin{}, err
	}

	return twin, nil
}

type recommendationService struct {
	*Contract
}

// NewRecommendationService returns the [RecommendationService] of c.
func NewRecommendationService(c *Contract) RecommendationService {
	return &recommendationService{Contract: c}
}

// RequestRecommendation folds the readings into watering (soil moisture),
// nutrients (CO2) and light sums and opens a decryption request for twinID.
func (s *recommendationService) RequestRecommendation(ctx context.Context, owner, twinID int64, readingIDs []int64) (models.RequestReceipt, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*recommendationService.RequestRecommendation").
		Int64("twin_id", twinID).
		Logger()

	if err := validateFold(twinID, readingIDs, 1); err != nil {
		return models.RequestReceipt{}, err
	}

	readings, err := s.loadOwnedReadings(ctx, owner, twinID, readingIDs)
	if err != nil {
		log.Err(err).Msg("error loading readings")
		return models.RequestReceipt{}, err
	}

	soil := make([]models.Handle, 0, len(readings))
	co2 := make([]models.Handle, 0, len(readings))
	light := make([]models.Handle, 0, len(readings))
	for _, r := range readings {
		soil = append(soil, r.SoilMoisture)
		co2 = append(co2, r.CO2)
		light = append(light, r.Light)
	}

	handles := make([]models.Handle, 0, 3)
	for _, group := range [][]models.Handle{soil, co2, light} {
		h, err := s.sumHandles(ctx, group)
		if err != nil {
			log.Err(err).Msg("error computing recommendation input")
			return models.RequestReceipt{}, err
		}
		handles = append(handles, h)
	}

	receipt, err := s.registerFold(ctx, owner, twinID, models.KindRecommendation,
		handles, len(readings), models.EventRecommendationRequested)
	if err != nil {
		log.Err(err).Msg("error registering recommendation request")
		return models.RequestReceipt{}, err
	}

	log.Info().Int64("request_id", receipt.RequestID).Msg("recommendation requested")
	return receipt, nil
}

func (s *recommendationService) GetRecommendation(ctx context.Context, twinID int64) (models.Recommendation, error) {
	rec := models.Recommendation{ID: twinID}

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		found, err := repos.Recommendations.Get(ctx, twinID)
		if err != nil {
			return err
		}
		rec = found
		return nil
	})
	if err != nil && !isNotFound(err) {
		return models.Recommendation{}, err
	}

	return rec, nil
}
