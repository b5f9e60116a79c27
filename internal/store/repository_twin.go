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

type twinRepository struct {
	tx DBTX
	sb sq.StatementBuilderType
}

func (r *twinRepository) Get(ctx context.Context, id int64) (models.Twin, error) {
	query, args, err := r.sb.Select(twinColumns...).
		From(models.Twin{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Twin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var twin models.Twin
	var fingerprint, health string
	err = r.tx.QueryRowContext(ctx, query, args...).Scan(
		&twin.ID, &fingerprint, &health, &twin.Encrypted.LastUpdated,
		&twin.Decrypted.Summary, &twin.Decrypted.HealthScore, &twin.Decrypted.Revealed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Twin{}, ErrTwinNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*twinRepository.Get").Int64("twin_id", id).Msg("error selecting twin")
		return models.Twin{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	twin.Encrypted.Fingerprint = models.Handle(fingerprint)
	twin.Encrypted.HealthScore = models.Handle(health)

	return twin, nil
}

func (r *twinRepository) Save(ctx context.Context, twin models.Twin) error {
	query, args, err := r.sb.Insert(twin.TableName()).
		Columns(twinColumns...).
		Values(
			twin.ID, twin.Encrypted.Fingerprint.String(), twin.Encrypted.HealthScore.String(), twin.Encrypted.LastUpdated.UTC(),
			twin.Decrypted.Summary, twin.Decrypted.HealthScore, twin.Decrypted.Revealed,
		).
		Suffix(upsertTwin).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*twinRepository.Save").Int64("twin_id", twin.ID).Msg("error saving twin")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type recommendationRepository struct {
	tx DBTX
	sb sq.StatementBuilderType
}

func (r *recommendationRepository) Get(ctx context.Context, id int64) (models.Recommendation, error) {
	query, args, err := r.sb.Select(recommendationColumns...).
		From(models.Recommendation{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.Recommendation
	var watering, nutrients, light string
	err = r.tx.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID, &watering, &nutrients, &light, &rec.Encrypted.LastUpdated,
		&rec.Decrypted.Watering, &rec.Decrypted.Nutrients, &rec.Decrypted.LightAdjust, &rec.Decrypted.Revealed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recommendation{}, ErrRecommendationNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recommendationRepository.Get").Int64("twin_id", id).Msg("error selecting recommendation")
		return models.Recommendation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rec.Encrypted.Watering = models.Handle(watering)
	rec.Encrypted.Nutrients = models.Handle(nutrients)
	rec.Encrypted.LightAdjust = models.Handle(light)

	return rec, nil
}

func (r *recommendationRepository) Save(ctx context.Context, rec models.Recommendation) error {
	query, args, err := r.sb.Insert(rec.TableName()).
		Columns(recommendationColumns...).
		Values(
			rec.ID, rec.Encrypted.Watering.String(), rec.Encrypted.Nutrients.String(), rec.Encrypted.LightAdjust.String(),
			rec.Encrypted.LastUpdated.UTC(),
			rec.Decrypted.Watering, rec.Decrypted.Nutrients, rec.Decrypted.LightAdjust, rec.Decrypted.Revealed,
		).
		Suffix(upsertRecommendation).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recommendationRepository.Save").Int64("twin_id", rec.ID).Msg("error saving recommendation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
