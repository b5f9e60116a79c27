package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/models"
)

type requestRepository struct {
	tx DBTX
	sb sq.StatementBuilderType
}

func (r *requestRepository) Register(ctx context.Context, req models.PendingRequest) error {
	handles, err := json.Marshal(req.Handles)
	if err != nil {
		return fmt.Errorf("error encoding request handles: %w", err)
	}

	var expiresAt sql.NullTime
	if !req.ExpiresAt.IsZero() {
		expiresAt = sql.NullTime{Time: req.ExpiresAt.UTC(), Valid: true}
	}

	query, args, err := r.sb.Insert(req.TableName()).
		Columns(requestColumns...).
		Values(req.ID, req.EntityID, req.Tag, string(req.Kind), string(handles), req.ReadingCount, req.Requester, req.CreatedAt.UTC(), expiresAt).
		Suffix(upsertRequest).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*requestRepository.Register").Int64("request_id", req.ID).Msg("error registering request")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *requestRepository) Get(ctx context.Context, id int64) (models.PendingRequest, error) {
	query, args, err := r.sb.Select(requestColumns...).
		From(models.PendingRequest{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.PendingRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	req, err := scanRequest(r.tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PendingRequest{}, ErrRequestNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*requestRepository.Get").Int64("request_id", id).Msg("error selecting request")
		return models.PendingRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return req, nil
}

func (r *requestRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete(models.PendingRequest{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*requestRepository.Delete").Int64("request_id", id).Msg("error deleting request")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *requestRepository) List(ctx context.Context, afterID int64, limit int) ([]models.PendingRequest, error) {
	query, args, err := r.sb.Select(requestColumns...).
		From(models.PendingRequest{}.TableName()).
		Where(sq.Gt{"id": afterID}).
		OrderBy("id").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.tx.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*requestRepository.List").Msg("error selecting requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.PendingRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		requests = append(requests, req)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}

func (r *requestRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	query, args, err := r.sb.Delete(models.PendingRequest{}.TableName()).
		Where(sq.And{
			sq.NotEq{"expires_at": nil},
			sq.LtOrEq{"expires_at": now.UTC()},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*requestRepository.DeleteExpired").Msg("error deleting expired requests")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (models.PendingRequest, error) {
	var req models.PendingRequest
	var kind, handles string
	var expiresAt sql.NullTime

	if err := row.Scan(&req.ID, &req.EntityID, &req.Tag, &kind, &handles, &req.ReadingCount, &req.Requester, &req.CreatedAt, &expiresAt); err != nil {
		return models.PendingRequest{}, err
	}

	if err := json.Unmarshal([]byte(handles), &req.Handles); err != nil {
		return models.PendingRequest{}, fmt.Errorf("error decoding request handles: %w", err)
	}
	req.Kind = models.RequestKind(kind)
	if expiresAt.Valid {
		req.ExpiresAt = expiresAt.Time
	}

	return req, nil
}
