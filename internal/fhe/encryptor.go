package fhe

import (
	"fmt"
	"sync"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

// Encryptor encrypts integers under a public key. It is used by the client.
// Safe for concurrent use.
type Encryptor struct {
	params    bgv.Parameters
	encoder   *bgv.Encoder
	encryptor *rlwe.Encryptor

	mu sync.Mutex
}

// NewEncryptor constructs an [Encryptor] for pk.
func NewEncryptor(params bgv.Parameters, pk *rlwe.PublicKey) *Encryptor {
	return &Encryptor{
		params:    params,
		encoder:   bgv.NewEncoder(params),
		encryptor: bgv.NewEncryptor(params, pk),
	}
}

// Encrypt returns the marshaled encryption of v.
func (e *Encryptor) Encrypt(v uint64) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pt := bgv.NewPlaintext(e.params, e.params.MaxLevel())
	if err := e.encoder.Encode(encodeValue(v, e.params.MaxSlots()), pt); err != nil {
		return nil, fmt.Errorf("error encoding value: %w", err)
	}

	ct, err := e.encryptor.EncryptNew(pt)
	if err != nil {
		return nil, fmt.Errorf("error encrypting value: %w", err)
	}

	raw, err := ct.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("error marshaling ciphertext: %w", err)
	}

	return raw, nil
}
