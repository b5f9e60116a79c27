package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/adapter"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

const (
	sensorKeyPrefix = "sensor:"
	adviceKeyPrefix = "advice:"
)

type clientRecordsService struct {
	adapter adapter.ServerAdapter
	ids     *utils.UUIDGenerator
	clock   func() time.Time
}

func NewClientRecordsService(serverAdapter adapter.ServerAdapter) ClientRecordsService {
	return &clientRecordsService{
		adapter: serverAdapter,
		ids:     utils.NewUUIDGenerator(),
		clock:   time.Now,
	}
}

// AddSensorRecord assigns an ID and a timestamp when rec has none and
// appends it under the sensor index.
func (r *clientRecordsService) AddSensorRecord(ctx context.Context, rec models.SensorRecord) (models.SensorRecord, error) {
	if rec.ID == "" {
		rec.ID = r.ids.Generate()
	}
	if rec.Timestamp == 0 {
		rec.Timestamp = r.clock().Unix()
	}

	if err := r.append(ctx, models.SensorIndexKey, sensorKeyPrefix+rec.ID, rec); err != nil {
		return models.SensorRecord{}, err
	}

	return rec, nil
}

func (r *clientRecordsService) AddAdviceRecord(ctx context.Context, rec models.AdviceRecord) (models.AdviceRecord, error) {
	if rec.ID == "" {
		rec.ID = r.ids.Generate()
	}
	if rec.Timestamp == 0 {
		rec.Timestamp = r.clock().Unix()
	}

	if err := r.append(ctx, models.AdviceIndexKey, adviceKeyPrefix+rec.ID, rec); err != nil {
		return models.AdviceRecord{}, err
	}

	return rec, nil
}

func (r *clientRecordsService) append(ctx context.Context, indexKey, recordKey string, rec any) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("error encoding record: %w", err)
	}

	err = r.adapter.AppendRecord(ctx, models.RecordAppend{
		IndexKey:  indexKey,
		RecordKey: recordKey,
		Value:     value,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*clientRecordsService.append").
			Str("record_key", recordKey).
			Msg("error appending record")
		return mapAdapterError(err)
	}

	return nil
}

func (r *clientRecordsService) SensorRecords(ctx context.Context) []models.SensorRecord {
	records := readRecords[models.SensorRecord](ctx, r.adapter, models.SensorIndexKey)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	return records
}

func (r *clientRecordsService) AdviceRecords(ctx context.Context) []models.AdviceRecord {
	records := readRecords[models.AdviceRecord](ctx, r.adapter, models.AdviceIndexKey)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	return records
}

// readRecords loads the key index and every record it lists. Anything that
// fails to load or decode is skipped.
func readRecords[T any](ctx context.Context, serverAdapter adapter.ServerAdapter, indexKey string) []T {
	log := logger.FromContext(ctx).With().
		Str("func", "service.readRecords").
		Str("index_key", indexKey).
		Logger()

	records := make([]T, 0)

	raw, err := serverAdapter.GetData(ctx, indexKey)
	if err != nil {
		log.Warn().Err(err).Msg("error reading record index")
		return records
	}
	if len(raw) == 0 {
		return records
	}

	var keys []string
	if err = json.Unmarshal(raw, &keys); err != nil {
		log.Warn().Err(err).Msg("record index is not a JSON array of keys")
		return records
	}

	for _, key := range keys {
		value, err := serverAdapter.GetData(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("record_key", key).Msg("error reading record")
			continue
		}
		if len(value) == 0 {
			log.Warn().Str("record_key", key).Msg("indexed record is empty")
			continue
		}

		var rec T
		if err = json.Unmarshal(value, &rec); err != nil {
			log.Warn().Err(err).Str("record_key", key).Msg("error decoding record")
			continue
		}
		records = append(records, rec)
	}

	return records
}
