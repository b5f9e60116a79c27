package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
)

const (
	sqlLedgerAttempts = 3
	sqlLedgerBackoff  = 50 * time.Millisecond
)

type sqlLedger struct {
	db *DB
}

// NewSQLLedger returns a [Ledger] that maps every operation onto one
// database transaction. Transactions failing with a retryable error are run
// again, so fn must not have side effects outside the repositories.
func NewSQLLedger(db *DB) Ledger {
	return &sqlLedger{db: db}
}

func (l *sqlLedger) Atomic(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= sqlLedgerAttempts; attempt++ {
		err = WithTx(ctx, l.db.DB, l.db.txOptions(), func(ctx context.Context, tx DBTX) error {
			return fn(ctx, newSQLRepositories(tx, l.db.builder()))
		})
		if err == nil || l.db.errorClassificator == nil || l.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).Str("func", "*sqlLedger.Atomic").Int("attempt", attempt).Msg("retrying transaction")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * sqlLedgerBackoff):
		}
	}

	return err
}

func (l *sqlLedger) Close() error {
	return l.db.Close()
}
