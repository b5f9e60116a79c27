package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// MemoryState is an in-process [WorldState].
type MemoryState struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryState returns an empty [MemoryState].
func NewMemoryState() *MemoryState {
	return &MemoryState{data: make(map[string][]byte)}
}

func (s *MemoryState) GetState(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data[key]), nil
}

func (s *MemoryState) PutState(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = slices.Clone(value)
	return nil
}

func (s *MemoryState) DelState(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Keys returns every stored key in lexical order.
func (s *MemoryState) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.data))
}

// overlayState buffers writes on top of base until commit. A nil entry
// marks a deletion.
type overlayState struct {
	base   WorldState
	writes map[string][]byte
}

func newOverlayState(base WorldState) *overlayState {
	return &overlayState{base: base, writes: make(map[string][]byte)}
}

func (o *overlayState) GetState(key string) ([]byte, error) {
	if v, ok := o.writes[key]; ok {
		return slices.Clone(v), nil
	}
	return o.base.GetState(key)
}

func (o *overlayState) PutState(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	o.writes[key] = slices.Clone(value)
	return nil
}

func (o *overlayState) DelState(key string) error {
	o.writes[key] = nil
	return nil
}

func (o *overlayState) commit() error {
	for _, key := range slices.Sorted(maps.Keys(o.writes)) {
		var err error
		if v := o.writes[key]; v == nil {
			err = o.base.DelState(key)
		} else {
			err = o.base.PutState(key, v)
		}
		if err != nil {
			return fmt.Errorf("error committing %q: %w", key, err)
		}
	}
	return nil
}

type memoryLedger struct {
	mu    sync.Mutex
	state WorldState
}

// NewMemoryLedger returns a [Ledger] over state. Operations are serialized
// and their writes buffered, so a failed operation leaves state untouched.
func NewMemoryLedger(state WorldState) Ledger {
	return &memoryLedger{state: state}
}

func (l *memoryLedger) Atomic(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	overlay := newOverlayState(l.state)
	if err := fn(ctx, NewStateRepositories(overlay)); err != nil {
		return err
	}

	return overlay.commit()
}

func (l *memoryLedger) Close() error {
	return nil
}

type directStateLedger struct {
	ws WorldState
}

// NewDirectStateLedger returns a [Ledger] that writes straight to ws. It is
// meant for chaincode, where the surrounding transaction already provides
// atomicity and ordering.
func NewDirectStateLedger(ws WorldState) Ledger {
	return &directStateLedger{ws: ws}
}

func (l *directStateLedger) Atomic(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return fn(ctx, NewStateRepositories(l.ws))
}

func (l *directStateLedger) Close() error {
	return nil
}

// getJSON decodes the value under key into v. It reports false for
// missing keys.
func getJSON(ws WorldState, key string, v any) (bool, error) {
	raw, err := ws.GetState(key)
	if err != nil {
		return false, fmt.Errorf("error reading %q: %w", key, err)
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrDecodingState, key, err)
	}
	return true, nil
}

func putJSON(ws WorldState, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding %q: %w", key, err)
	}
	if err = ws.PutState(key, raw); err != nil {
		return fmt.Errorf("error writing %q: %w", key, err)
	}
	return nil
}
