package service

import (
	"context"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

func pageSize(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}

type feedService struct {
	*Contract
}

// NewOracleFeedService returns the [OracleFeedService] of c.
func NewOracleFeedService(c *Contract) OracleFeedService {
	return &feedService{Contract: c}
}

// PendingRequests returns live requests with an ID greater than afterID, in
// ID order. Expired requests that have not been swept yet are skipped.
func (s *feedService) PendingRequests(ctx context.Context, afterID int64, limit int) ([]models.PendingRequest, error) {
	var live []models.PendingRequest

	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		all, err := repos.Requests.List(ctx, afterID, pageSize(limit))
		if err != nil {
			return err
		}

		now := s.clock()
		live = make([]models.PendingRequest, 0, len(all))
		for _, req := range all {
			if !req.Expired(now) {
				live = append(live, req)
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*feedService.PendingRequests").Msg("error listing pending requests")
		return nil, err
	}

	return live, nil
}

func (s *feedService) Ciphertext(ctx context.Context, handle models.Handle) ([]byte, error) {
	return s.ciphertexts.Get(ctx, handle)
}

type eventService struct {
	*Contract
}

// NewEventService returns the [EventService] of c.
func NewEventService(c *Contract) EventService {
	return &eventService{Contract: c}
}

func (s *eventService) List(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error) {
	var events []models.Event
	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		events, err = repos.Events.List(ctx, afterSeq, pageSize(limit))
		return err
	})
	if events == nil {
		events = []models.Event{}
	}
	return events, err
}

type maintenanceService struct {
	*Contract
}

// NewMaintenanceService returns the [MaintenanceService] of c.
func NewMaintenanceService(c *Contract) MaintenanceService {
	return &maintenanceService{Contract: c}
}

// PruneExpiredRequests deletes every request past its deadline. Callbacks
// for pruned requests are rejected as unknown.
func (s *maintenanceService) PruneExpiredRequests(ctx context.Context) (int, error) {
	var pruned int
	err := s.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		pruned, err = repos.Requests.DeleteExpired(ctx, s.clock())
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*maintenanceService.PruneExpiredRequests").Msg("error pruning requests")
		return 0, err
	}

	if pruned > 0 {
		logger.FromContext(ctx).Info().Int("pruned", pruned).Msg("expired requests pruned")
	}
	return pruned, nil
}
