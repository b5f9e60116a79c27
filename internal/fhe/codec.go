package fhe

import (
	"fmt"
	"math/big"
)

const (
	limbBits  = 4
	limbMask  = 1<<limbBits - 1
	limbCount = 64 / limbBits

	// MaxAdditions is the number of fresh ciphertexts that may be summed into
	// one ciphertext before a limb can wrap around the plaintext modulus.
	MaxAdditions = 4096
)

// encodeValue splits v into limbCount little-endian limbs laid out in a
// vector of the given slot count.
func encodeValue(v uint64, slots int) []uint64 {
	vec := make([]uint64, slots)
	for i := 0; i < limbCount; i++ {
		vec[i] = (v >> (limbBits * i)) & limbMask
	}
	return vec
}

// decodeValue folds the limb slots back into an integer. Limbs may exceed
// limbMask after homomorphic additions; the carry is resolved here.
func decodeValue(vec []uint64) (uint64, error) {
	if len(vec) < limbCount {
		return 0, fmt.Errorf("%w: %d slots, need %d", ErrInvalidCiphertext, len(vec), limbCount)
	}

	sum := new(big.Int)
	limb := new(big.Int)
	for i := limbCount - 1; i >= 0; i-- {
		sum.Lsh(sum, limbBits)
		limb.SetUint64(vec[i])
		sum.Add(sum, limb)
	}

	if !sum.IsUint64() {
		return 0, ErrValueOverflow
	}

	return sum.Uint64(), nil
}
