package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
)

// Workers runs a set of workers side by side.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned, which happens after ctx is done.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}

// runTicker calls tick every interval until ctx is done. The first tick runs
// right away.
func runTicker(ctx context.Context, interval time.Duration, log *logger.Logger, tick func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("worker started")
	defer log.Info().Msg("worker stopped")

	for {
		tick(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
