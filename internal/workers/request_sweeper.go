package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/rs/zerolog"
)

const defaultSweepInterval = time.Minute

// RequestSweeper prunes pending decryption requests whose TTL has passed.
type RequestSweeper struct {
	maintenance service.MaintenanceService
	interval    time.Duration

	logger *logger.Logger
}

func NewRequestSweeper(maintenance service.MaintenanceService, interval time.Duration, log *logger.Logger) *RequestSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &RequestSweeper{
		maintenance: maintenance,
		interval:    interval,
		logger:      log,
	}
}

func (s *RequestSweeper) Run(ctx context.Context) {
	l := s.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", "request_sweeper")
	})
	ctx = l.WithContext(ctx)

	runTicker(ctx, s.interval, l, func(ctx context.Context) {
		pruned, err := s.maintenance.PruneExpiredRequests(ctx)
		if err != nil {
			if ctx.Err() == nil {
				l.Err(err).Msg("error pruning expired requests")
			}
			return
		}
		if pruned > 0 {
			l.Info().Int("pruned", pruned).Msg("expired requests pruned")
		}
	})
}
