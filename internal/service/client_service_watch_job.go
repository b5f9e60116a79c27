package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/models"
)

const watchPageSize = 100

type clientEventWatchJob struct {
	farm ClientFarmService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientEventWatchJob creates a job that polls farm.Events on a ticker.
// The job is idle until Start is called.
func NewClientEventWatchJob(farm ClientFarmService) ClientEventWatchJob {
	return &clientEventWatchJob{farm: farm}
}

// Start launches the polling goroutine. It exits when ctx is cancelled or
// Stop is called.
func (j *clientEventWatchJob) Start(ctx context.Context, afterSeq int64, interval time.Duration, onEvents func([]models.Event)) {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		cursor := afterSeq
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				cursor = j.poll(jobCtx, cursor, onEvents)
			}
		}
	}()
}

// poll drains every page after cursor and returns the new cursor.
func (j *clientEventWatchJob) poll(ctx context.Context, cursor int64, onEvents func([]models.Event)) int64 {
	for {
		events, err := j.farm.Events(ctx, cursor, watchPageSize)
		if err != nil {
			if ctx.Err() == nil {
				logger.FromContext(ctx).Warn().Err(err).
					Str("func", "*clientEventWatchJob.poll").
					Int64("after_seq", cursor).
					Msg("error polling events")
			}
			return cursor
		}
		if len(events) == 0 {
			return cursor
		}

		cursor = events[len(events)-1].Seq
		if onEvents != nil {
			onEvents(events)
		}
		if len(events) < watchPageSize {
			return cursor
		}
	}
}

// Stop cancels the background goroutine and blocks until it has exited.
// No-op when the job is not running.
func (j *clientEventWatchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
