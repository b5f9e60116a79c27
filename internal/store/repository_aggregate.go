package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/models"
)

type aggregateRepository struct {
	tx DBTX
	sb sq.StatementBuilderType
}

func (r *aggregateRepository) Get(ctx context.Context, key string) (models.Aggregate, error) {
	query, args, err := r.sb.Select(aggregateColumns...).
		From(models.Aggregate{}.TableName()).
		Where(sq.Eq{"agg_key": key}).
		ToSql()
	if err != nil {
		return models.Aggregate{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var agg models.Aggregate
	var handle string
	err = r.tx.QueryRowContext(ctx, query, args...).Scan(
		&agg.Key, &agg.KeyHash, &handle, &agg.Owner, &agg.Additions, &agg.Position, &agg.CreatedAt, &agg.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Aggregate{}, ErrAggregateNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*aggregateRepository.Get").Str("key", key).Msg("error selecting aggregate")
		return models.Aggregate{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	agg.Handle = models.Handle(handle)

	return agg, nil
}

// Create checks both uniqueness constraints up front so that the two
// conflicts map onto distinct errors.
func (r *aggregateRepository) Create(ctx context.Context, agg models.Aggregate) error {
	existing, err := r.FindKeyByHash(ctx, agg.KeyHash)
	switch {
	case err == nil && existing == agg.Key:
		return ErrAggregateExists
	case err == nil:
		return fmt.Errorf("%w: %q and %q", ErrKeyHashCollision, existing, agg.Key)
	case !errors.Is(err, ErrAggregateNotFound):
		return err
	}

	query, args, err := r.sb.Insert(agg.TableName()).
		Columns(aggregateColumns...).
		Values(agg.Key, agg.KeyHash, agg.Handle.String(), agg.Owner, agg.Additions, agg.Position, agg.CreatedAt.UTC(), agg.UpdatedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrAggregateExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*aggregateRepository.Create").Str("key", agg.Key).Msg("error inserting aggregate")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *aggregateRepository) UpdateHandle(ctx context.Context, key string, handle models.Handle, additions int, updatedAt time.Time) error {
	query, args, err := r.sb.Update(models.Aggregate{}.TableName()).
		Set("handle", handle.String()).
		Set("additions", additions).
		Set("updated_at", updatedAt.UTC()).
		Where(sq.Eq{"agg_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*aggregateRepository.UpdateHandle").Str("key", key).Msg("error updating aggregate")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrAggregateNotFound
	}

	return nil
}

func (r *aggregateRepository) Keys(ctx context.Context) ([]string, error) {
	query, args, err := r.sb.Select("agg_key").
		From(models.Aggregate{}.TableName()).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.tx.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*aggregateRepository.Keys").Msg("error selecting aggregate keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (r *aggregateRepository) FindKeyByHash(ctx context.Context, keyHash int64) (string, error) {
	query, args, err := r.sb.Select("agg_key").
		From(models.Aggregate{}.TableName()).
		Where(sq.Eq{"key_hash": keyHash}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var key string
	err = r.tx.QueryRowContext(ctx, query, args...).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrAggregateNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*aggregateRepository.FindKeyByHash").Int64("key_hash", keyHash).Msg("error selecting aggregate")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return key, nil
}
