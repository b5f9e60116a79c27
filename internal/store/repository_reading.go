package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/models"
)

type readingRepository struct {
	tx DBTX
	sb sq.StatementBuilderType
}

func (r *readingRepository) Create(ctx context.Context, reading models.Reading) error {
	query, args, err := r.sb.Insert(reading.TableName()).
		Columns(readingColumns...).
		Values(
			reading.ID, reading.Owner,
			reading.Timestamp.String(), reading.Temperature.String(), reading.Humidity.String(),
			reading.CO2.String(), reading.Light.String(), reading.SoilMoisture.String(),
			reading.SubmittedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*readingRepository.Create").Int64("reading_id", reading.ID).Msg("error inserting reading")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *readingRepository) Get(ctx context.Context, id int64) (models.Reading, error) {
	query, args, err := r.sb.Select(readingColumns...).
		From(models.Reading{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Reading{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reading models.Reading
	var ts, temp, hum, co2, light, soil string
	err = r.tx.QueryRowContext(ctx, query, args...).Scan(
		&reading.ID, &reading.Owner,
		&ts, &temp, &hum, &co2, &light, &soil,
		&reading.SubmittedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reading{}, ErrReadingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*readingRepository.Get").Int64("reading_id", id).Msg("error selecting reading")
		return models.Reading{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	reading.Timestamp = models.Handle(ts)
	reading.Temperature = models.Handle(temp)
	reading.Humidity = models.Handle(hum)
	reading.CO2 = models.Handle(co2)
	reading.Light = models.Handle(light)
	reading.SoilMoisture = models.Handle(soil)

	return reading, nil
}
