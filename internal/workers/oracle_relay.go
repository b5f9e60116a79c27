package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/rs/zerolog"
)

const defaultPollInterval = 2 * time.Second

// OracleRelay polls the contract host for pending decryption requests and
// answers them through the oracle service.
type OracleRelay struct {
	oracle   service.OracleService
	interval time.Duration

	logger *logger.Logger
}

func NewOracleRelay(oracle service.OracleService, interval time.Duration, log *logger.Logger) *OracleRelay {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &OracleRelay{
		oracle:   oracle,
		interval: interval,
		logger:   log,
	}
}

func (r *OracleRelay) Run(ctx context.Context) {
	l := r.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", "oracle_relay")
	})
	ctx = l.WithContext(ctx)

	runTicker(ctx, r.interval, l, func(ctx context.Context) {
		// drain full batches before waiting for the next tick
		for ctx.Err() == nil {
			processed, err := r.oracle.ProcessBatch(ctx)
			if err != nil {
				if ctx.Err() == nil {
					l.Err(err).Msg("error processing oracle batch")
				}
				return
			}
			if processed == 0 {
				return
			}
			l.Debug().Int("processed", processed).Msg("oracle batch answered")
		}
	})
}
