package store

import (
	"context"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/models"
)

type eventRepository struct {
	tx DBTX
	sb sq.StatementBuilderType
}

// Append stores event. Value is kept as decimal text because BIGINT cannot
// hold the full uint64 range.
func (r *eventRepository) Append(ctx context.Context, event models.Event) error {
	query, args, err := r.sb.Insert(event.TableName()).
		Columns(eventColumns...).
		Values(event.Seq, string(event.Name), event.EntityID, event.RequestID, event.Key,
			strconv.FormatUint(event.Value, 10), event.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*eventRepository.Append").Str("event", string(event.Name)).Msg("error appending event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *eventRepository) List(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error) {
	query, args, err := r.sb.Select(eventColumns...).
		From(models.Event{}.TableName()).
		Where(sq.Gt{"seq": afterSeq}).
		OrderBy("seq").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.tx.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*eventRepository.List").Msg("error selecting events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var ev models.Event
		var name, value string
		if err = rows.Scan(&ev.Seq, &name, &ev.EntityID, &ev.RequestID, &ev.Key, &value, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ev.Name = models.EventName(name)
		if ev.Value, err = strconv.ParseUint(value, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: event %d value: %w", ErrScanningRow, ev.Seq, err)
		}
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}
