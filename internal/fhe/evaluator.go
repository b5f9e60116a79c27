package fhe

import (
	"fmt"
	"sync"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

// Evaluator performs the contract-side homomorphic operations. It holds no
// key material: additions need no evaluation keys and the zero accumulator
// is a trivial (noiseless) encryption, so every peer computes identical bytes.
type Evaluator struct {
	params bgv.Parameters
	eval   *bgv.Evaluator

	// ctSize is the marshaled size of a degree-1 ciphertext at the top level.
	ctSize int

	mu sync.Mutex
}

// NewEvaluator constructs an [Evaluator] for params.
func NewEvaluator(params bgv.Parameters) *Evaluator {
	return &Evaluator{
		params: params,
		eval:   bgv.NewEvaluator(params, nil),
		ctSize: rlwe.NewCiphertext(params, 1, params.MaxLevel()).BinarySize(),
	}
}

// Zero returns the marshaled encryption of zero used to initialize
// accumulators.
func (e *Evaluator) Zero() ([]byte, error) {
	ct := rlwe.NewCiphertext(e.params, 1, e.params.MaxLevel())
	ct.IsNTT = e.params.NTTFlag()
	ct.IsBatched = true
	ct.LogDimensions = e.params.LogMaxDimensions()
	ct.Scale = e.params.DefaultScale()

	raw, err := ct.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("error marshaling zero ciphertext: %w", err)
	}

	return raw, nil
}

// Add returns the marshaled homomorphic sum of a and b.
func (e *Evaluator) Add(a, b []byte) ([]byte, error) {
	return e.Sum(a, b)
}

// Sum returns the marshaled homomorphic sum of every ciphertext in cts.
func (e *Evaluator) Sum(cts ...[]byte) ([]byte, error) {
	if len(cts) == 0 {
		return nil, ErrNothingToSum
	}

	acc, err := e.unmarshal(cts[0])
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i, raw := range cts[1:] {
		op, err := e.unmarshal(raw)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		if err = e.eval.Add(acc, op, acc); err != nil {
			return nil, fmt.Errorf("error adding operand %d: %w", i+1, err)
		}
	}

	out, err := acc.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("error marshaling sum: %w", err)
	}

	return out, nil
}

// Validate checks that raw is a well-formed degree-1 ciphertext at the
// parameters' top level.
func (e *Evaluator) Validate(raw []byte) error {
	_, err := e.unmarshal(raw)
	return err
}

// unmarshal decodes untrusted bytes. The size check runs first so a forged
// length prefix never reaches the decoder's allocations, and a decoder panic
// is reported as ErrInvalidCiphertext.
func (e *Evaluator) unmarshal(raw []byte) (ct *rlwe.Ciphertext, err error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidCiphertext)
	}
	if len(raw) != e.ctSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidCiphertext, len(raw), e.ctSize)
	}

	defer func() {
		if r := recover(); r != nil {
			ct, err = nil, fmt.Errorf("%w: %v", ErrInvalidCiphertext, r)
		}
	}()

	ct = rlwe.NewCiphertext(e.params, 1, e.params.MaxLevel())
	if err = ct.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}

	if ct.Degree() != 1 || ct.Level() != e.params.MaxLevel() {
		return nil, fmt.Errorf("%w: degree %d level %d", ErrInvalidCiphertext, ct.Degree(), ct.Level())
	}

	return ct, nil
}
