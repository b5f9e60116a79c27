package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
)

const (
	dataTable    = "kv_data"
	aclTable     = "acl"
	counterTable = "counters"
)

type dataRepository struct {
	tx DBTX
	sb sq.StatementBuilderType
}

func (r *dataRepository) Get(ctx context.Context, owner int64, key string) ([]byte, error) {
	query, args, err := r.sb.Select("value").
		From(dataTable).
		Where(sq.Eq{"owner": owner, "data_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.tx.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDataNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dataRepository.Get").Str("key", key).Msg("error selecting data")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *dataRepository) Put(ctx context.Context, owner int64, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	query, args, err := r.sb.Insert(dataTable).
		Columns("owner", "data_key", "value", "updated_at").
		Values(owner, key, value, time.Now().UTC()).
		Suffix(upsertData).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dataRepository.Put").Str("key", key).Msg("error saving data")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type aclRepository struct {
	tx DBTX
	sb sq.StatementBuilderType
}

func (r *aclRepository) Owner(ctx context.Context, kind string, id int64) (int64, error) {
	query, args, err := r.sb.Select("owner").
		From(aclTable).
		Where(sq.Eq{"kind": kind, "entity_id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var owner int64
	err = r.tx.QueryRowContext(ctx, query, args...).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*aclRepository.Owner").Int64("entity_id", id).Msg("error selecting owner")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return owner, nil
}

func (r *aclRepository) Claim(ctx context.Context, kind string, id int64, owner int64) error {
	query, args, err := r.sb.Insert(aclTable).
		Columns("kind", "entity_id", "owner").
		Values(kind, id, owner).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyClaimed
		}
		logger.FromContext(ctx).Err(err).Str("func", "*aclRepository.Claim").Int64("entity_id", id).Msg("error claiming entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type counterRepository struct {
	tx DBTX
	sb sq.StatementBuilderType
}

func (r *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	query, args, err := r.sb.Insert(counterTable).
		Columns("name", "value").
		Values(name, 1).
		Suffix(incrementCounter).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value int64
	if err = r.tx.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*counterRepository.Next").Str("counter", name).Msg("error incrementing counter")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return value, nil
}
