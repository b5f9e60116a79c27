package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-farm-twin/internal/adapter"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/models"
)

type clientFarmService struct {
	adapter   adapter.ServerAdapter
	encryptor Encryptor
}

// NewClientFarmService returns a [ClientFarmService]. encryptor may be nil,
// in which case only the commands that send no new ciphertexts work.
func NewClientFarmService(serverAdapter adapter.ServerAdapter, encryptor Encryptor) ClientFarmService {
	return &clientFarmService{adapter: serverAdapter, encryptor: encryptor}
}

func (f *clientFarmService) SubmitReading(ctx context.Context, reading models.PlainReading) (models.Reading, error) {
	log := logger.FromContext(ctx).With().Str("func", "*clientFarmService.SubmitReading").Logger()

	if f.encryptor == nil {
		return models.Reading{}, ErrNoPublicKey
	}

	values := reading.Values()
	cts := make([][]byte, len(values))
	for i, v := range values {
		ct, err := f.encryptor.Encrypt(v)
		if err != nil {
			log.Err(err).Int("field", i).Msg("error encrypting sensor value")
			return models.Reading{}, fmt.Errorf("error encrypting sensor value %d: %w", i, err)
		}
		cts[i] = ct
	}

	stored, err := f.adapter.SubmitReading(ctx, models.ReadingCiphertexts{
		Timestamp:    cts[0],
		Temperature:  cts[1],
		Humidity:     cts[2],
		CO2:          cts[3],
		Light:        cts[4],
		SoilMoisture: cts[5],
	})
	if err != nil {
		return models.Reading{}, mapAdapterError(err)
	}

	log.Debug().Int64("reading_id", stored.ID).Msg("reading submitted")
	return stored, nil
}

func (f *clientFarmService) RequestTwinUpdate(ctx context.Context, twinID int64, readingIDs []int64) (models.RequestReceipt, error) {
	if len(readingIDs) == 0 {
		return models.RequestReceipt{}, ErrEmptyReadingList
	}

	receipt, err := f.adapter.RequestTwinUpdate(ctx, twinID, readingIDs)
	return receipt, mapAdapterError(err)
}

func (f *clientFarmService) GetTwin(ctx context.Context, twinID int64) (models.Twin, error) {
	twin, err := f.adapter.GetTwin(ctx, twinID)
	return twin, mapAdapterError(err)
}

func (f *clientFarmService) RequestRecommendation(ctx context.Context, twinID int64, readingIDs []int64) (models.RequestReceipt, error) {
	if len(readingIDs) == 0 {
		return models.RequestReceipt{}, ErrEmptyReadingList
	}

	receipt, err := f.adapter.RequestRecommendation(ctx, twinID, readingIDs)
	return receipt, mapAdapterError(err)
}

func (f *clientFarmService) GetRecommendation(ctx context.Context, twinID int64) (models.Recommendation, error) {
	rec, err := f.adapter.GetRecommendation(ctx, twinID)
	return rec, mapAdapterError(err)
}

func (f *clientFarmService) AddToAggregate(ctx context.Context, key string, value uint64) (models.Aggregate, error) {
	if f.encryptor == nil {
		return models.Aggregate{}, ErrNoPublicKey
	}

	delta, err := f.encryptor.Encrypt(value)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientFarmService.AddToAggregate").Msg("error encrypting delta")
		return models.Aggregate{}, fmt.Errorf("error encrypting delta: %w", err)
	}

	agg, err := f.adapter.AddToAggregate(ctx, key, delta)
	return agg, mapAdapterError(err)
}

func (f *clientFarmService) RequestAggregateReveal(ctx context.Context, key string) (models.RequestReceipt, error) {
	receipt, err := f.adapter.RequestAggregateReveal(ctx, key)
	return receipt, mapAdapterError(err)
}

func (f *clientFarmService) AggregateKeys(ctx context.Context) ([]string, error) {
	keys, err := f.adapter.AggregateKeys(ctx)
	return keys, mapAdapterError(err)
}

func (f *clientFarmService) Events(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error) {
	events, err := f.adapter.Events(ctx, afterSeq, limit)
	return events, mapAdapterError(err)
}
