package fhe

import (
	"fmt"
	"sync"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

// Decryptor decrypts ciphertexts with the secret key. Only the decryption
// oracle holds one.
type Decryptor struct {
	params    bgv.Parameters
	encoder   *bgv.Encoder
	decryptor *rlwe.Decryptor
	evaluator *Evaluator

	mu sync.Mutex
}

// NewDecryptor constructs a [Decryptor] for sk.
func NewDecryptor(params bgv.Parameters, sk *rlwe.SecretKey) *Decryptor {
	return &Decryptor{
		params:    params,
		encoder:   bgv.NewEncoder(params),
		decryptor: bgv.NewDecryptor(params, sk),
		evaluator: NewEvaluator(params),
	}
}

// Decrypt returns the integer encrypted in raw.
func (d *Decryptor) Decrypt(raw []byte) (uint64, error) {
	ct, err := d.evaluator.unmarshal(raw)
	if err != nil {
		return 0, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	pt := d.decryptor.DecryptNew(ct)

	vec := make([]uint64, d.params.MaxSlots())
	if err = d.encoder.Decode(pt, vec); err != nil {
		return 0, fmt.Errorf("error decoding plaintext: %w", err)
	}

	return decodeValue(vec)
}
