// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-farm-twin/internal/adapter"
	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/models"
)

const (
	defaultOracleBatchSize   = 50
	defaultOracleMaxAttempts = 5
)

// Soil moisture bands of the twin summary, in percent.
const (
	healthyMoisture = 60
	dryMoisture     = 30
)

var (
	ErrUnsupportedRequestKind = errors.New("unsupported request kind")
	ErrMissingHandles         = errors.New("request carries too few handles")
)

type oracleService struct {
	adapter     adapter.OracleAdapter
	decryptor   Decryptor
	signer      ProofSigner
	batchSize   int
	maxAttempts int

	mu       sync.Mutex
	attempts map[int64]int

	// cursor is the last request ID of the previous full batch. Batches walk
	// the pending list from it and wrap to the head at the tail, so requests
	// given up on never hide the ones behind them.
	cursor int64
	seen   map[int64]struct{}
}

func NewOracleService(oracleAdapter adapter.OracleAdapter, decryptor Decryptor, signer ProofSigner, cfg config.Workers) OracleService {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultOracleBatchSize
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultOracleMaxAttempts
	}

	return &oracleService{
		adapter:     oracleAdapter,
		decryptor:   decryptor,
		signer:      signer,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		attempts:    make(map[int64]int),
		seen:        make(map[int64]struct{}),
	}
}

func (o *oracleService) ProcessBatch(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).With().Str("func", "*oracleService.ProcessBatch").Logger()

	requests, err := o.adapter.PendingRequests(ctx, o.position(), o.batchSize)
	if err != nil {
		log.Err(err).Msg("error fetching pending requests")
		return 0, fmt.Errorf("error fetching pending requests: %w", err)
	}

	processed := 0
	for _, req := range requests {
		o.see(req.ID)

		if o.exhausted(req.ID) {
			continue
		}

		if err = o.process(ctx, req); err != nil {
			failures := o.recordFailure(req.ID)
			log.Warn().Err(err).
				Int64("request_id", req.ID).
				Str("kind", string(req.Kind)).
				Int("attempt", failures).
				Msg("error processing decryption request")
			if failures >= o.maxAttempts {
				log.Error().Int64("request_id", req.ID).Msg("giving up on decryption request")
			}
			continue
		}

		o.forget(req.ID)
		processed++
	}

	if len(requests) < o.batchSize {
		o.endPass()
	} else {
		o.advance(requests[len(requests)-1].ID)
	}

	return processed, nil
}

func (o *oracleService) process(ctx context.Context, req models.PendingRequest) error {
	values := make([]uint64, len(req.Handles))
	for i, handle := range req.Handles {
		raw, err := o.adapter.Ciphertext(ctx, handle)
		if err != nil {
			return fmt.Errorf("error fetching ciphertext %s: %w", handle, err)
		}
		if values[i], err = o.decryptor.Decrypt(raw); err != nil {
			return fmt.Errorf("error decrypting ciphertext %s: %w", handle, err)
		}
	}

	fields, err := buildCleartexts(req, values)
	if err != nil {
		return err
	}

	cleartexts, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("error encoding cleartexts: %w", err)
	}

	proof, err := o.signer.Sign(req.ID, cleartexts)
	if err != nil {
		return fmt.Errorf("error signing proof: %w", err)
	}

	err = o.adapter.Callback(ctx, req.Kind, models.DecryptionCallback{
		RequestID:  req.ID,
		Cleartexts: cleartexts,
		Proof:      proof,
	})
	if err != nil {
		return fmt.Errorf("error delivering callback: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*oracleService.process").
		Int64("request_id", req.ID).
		Str("kind", string(req.Kind)).
		Msg("callback delivered")

	return nil
}

// buildCleartexts turns decrypted handle values into the callback payload of
// req.Kind.
func buildCleartexts(req models.PendingRequest, values []uint64) ([]string, error) {
	count := uint64(req.ReadingCount)
	if count == 0 {
		count = 1
	}

	switch req.Kind {
	case models.KindTwinUpdate:
		if len(values) < 2 {
			return nil, fmt.Errorf("%w: twin update needs 2, got %d", ErrMissingHandles, len(values))
		}
		avg := values[1] / count
		return []string{
			fmt.Sprintf("%s,%d%% moisture", moistureStatus(avg), avg),
			strconv.FormatUint(avg, 10),
		}, nil

	case models.KindRecommendation:
		if len(values) < 3 {
			return nil, fmt.Errorf("%w: recommendation needs 3, got %d", ErrMissingHandles, len(values))
		}
		return []string{
			wateringAdvice(values[0] / count),
			nutrientAdvice(values[1] / count),
			lightAdvice(values[2] / count),
		}, nil

	case models.KindAggregate:
		if len(values) < 1 {
			return nil, fmt.Errorf("%w: aggregate needs 1, got 0", ErrMissingHandles)
		}
		return []string{strconv.FormatUint(values[0], 10)}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedRequestKind, req.Kind)
}

func moistureStatus(avg uint64) string {
	switch {
	case avg >= healthyMoisture:
		return "Healthy"
	case avg < dryMoisture:
		return "Dry"
	default:
		return "Moderate"
	}
}

// wateringAdvice takes the average soil moisture in percent.
func wateringAdvice(avg uint64) string {
	switch {
	case avg < dryMoisture:
		return fmt.Sprintf("Increase watering, soil moisture %d%%", avg)
	case avg > 80:
		return fmt.Sprintf("Reduce watering, soil moisture %d%%", avg)
	default:
		return fmt.Sprintf("Keep watering schedule, soil moisture %d%%", avg)
	}
}

// nutrientAdvice takes the average CO2 level in ppm.
func nutrientAdvice(avg uint64) string {
	switch {
	case avg < 400:
		return fmt.Sprintf("Add fertilizer, CO2 %d ppm", avg)
	case avg > 1500:
		return fmt.Sprintf("Ventilate and pause feeding, CO2 %d ppm", avg)
	default:
		return fmt.Sprintf("Nutrients sufficient, CO2 %d ppm", avg)
	}
}

// lightAdvice takes the average illuminance in lux.
func lightAdvice(avg uint64) string {
	switch {
	case avg < 10000:
		return fmt.Sprintf("Increase light exposure, %d lux", avg)
	case avg > 60000:
		return fmt.Sprintf("Add shading, %d lux", avg)
	default:
		return fmt.Sprintf("Light adequate, %d lux", avg)
	}
}

func (o *oracleService) exhausted(id int64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.attempts[id] >= o.maxAttempts
}

func (o *oracleService) recordFailure(id int64) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.attempts[id]++
	return o.attempts[id]
}

func (o *oracleService) forget(id int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.attempts, id)
}

func (o *oracleService) position() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cursor
}

func (o *oracleService) see(id int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen[id] = struct{}{}
}

func (o *oracleService) advance(id int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cursor = id
}

// endPass rewinds the cursor to the head and drops counters of requests
// that were not pending anywhere in the finished pass.
func (o *oracleService) endPass() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for id := range o.attempts {
		if _, ok := o.seen[id]; !ok {
			delete(o.attempts, id)
		}
	}
	clear(o.seen)
	o.cursor = 0
}
