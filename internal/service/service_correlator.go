package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

// RequestCorrelator maps decryption request IDs to the entity and tag they
// were issued for. All methods run inside a caller's ledger operation.
type RequestCorrelator struct {
	ttl time.Duration
	now func() time.Time
}

// NewRequestCorrelator returns a correlator whose requests expire after ttl.
// Zero disables expiry.
func NewRequestCorrelator(ttl time.Duration, now func() time.Time) *RequestCorrelator {
	if now == nil {
		now = time.Now
	}
	return &RequestCorrelator{ttl: ttl, now: now}
}

// Open mints a fresh request ID for req and registers it.
func (c *RequestCorrelator) Open(ctx context.Context, repos store.Repositories, req models.PendingRequest) (models.PendingRequest, error) {
	id, err := repos.Counters.Next(ctx, seqRequests)
	if err != nil {
		return models.PendingRequest{}, fmt.Errorf("error minting request id: %w", err)
	}
	req.ID = id

	return c.Register(ctx, repos, req)
}

// Register stores req under req.ID unconditionally. An existing entry with
// the same ID is overwritten. Tag and timestamps are filled in when unset.
func (c *RequestCorrelator) Register(ctx context.Context, repos store.Repositories, req models.PendingRequest) (models.PendingRequest, error) {
	if req.Tag == "" {
		req.Tag = utils.RequestTag(req.Kind)
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = c.now().UTC()
	}
	if req.ExpiresAt.IsZero() && c.ttl > 0 {
		req.ExpiresAt = req.CreatedAt.Add(c.ttl)
	}
	if req.Handles == nil {
		req.Handles = []models.Handle{}
	}

	if err := repos.Requests.Register(ctx, req); err != nil {
		return models.PendingRequest{}, err
	}

	return req, nil
}

// Resolve returns the request registered under id. Unknown and expired
// requests resolve to the zero value, whose IsAbsent reports true.
func (c *RequestCorrelator) Resolve(ctx context.Context, repos store.Repositories, id int64) (models.PendingRequest, error) {
	req, err := repos.Requests.Get(ctx, id)
	if errors.Is(err, store.ErrRequestNotFound) {
		return models.PendingRequest{}, nil
	}
	if err != nil {
		return models.PendingRequest{}, err
	}

	if req.Expired(c.now()) {
		return models.PendingRequest{}, nil
	}

	return req, nil
}

// Consume deletes the request so it cannot be answered twice.
func (c *RequestCorrelator) Consume(ctx context.Context, repos store.Repositories, id int64) error {
	return repos.Requests.Delete(ctx, id)
}
