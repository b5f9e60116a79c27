package fhe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

const (
	// DefaultLogN is the ring degree exponent used when none is configured.
	DefaultLogN = 13

	// DefaultPlaintextModulus is the BGV plaintext modulus T. The limb codec
	// relies on T being larger than MaxAdditions*15.
	DefaultPlaintextModulus uint64 = 65537
)

// NewParameters builds BGV parameters for the given ring degree exponent and
// plaintext modulus, falling back to the defaults for zero values.
func NewParameters(logN int, plaintextModulus uint64) (bgv.Parameters, error) {
	if logN == 0 {
		logN = DefaultLogN
	}
	if plaintextModulus == 0 {
		plaintextModulus = DefaultPlaintextModulus
	}
	if plaintextModulus <= MaxAdditions*limbMask {
		return bgv.Parameters{}, fmt.Errorf("plaintext modulus %d is too small for %d additions", plaintextModulus, MaxAdditions)
	}

	params, err := bgv.NewParametersFromLiteral(bgv.ParametersLiteral{
		LogN:             logN,
		LogQ:             []int{54},
		LogP:             []int{54},
		PlaintextModulus: plaintextModulus,
	})
	if err != nil {
		return bgv.Parameters{}, fmt.Errorf("error building bgv parameters: %w", err)
	}

	if params.MaxSlots() < limbCount {
		return bgv.Parameters{}, fmt.Errorf("bgv parameters provide %d slots, need %d", params.MaxSlots(), limbCount)
	}

	return params, nil
}

// DefaultParameters returns the parameters shared by every party unless
// configured otherwise.
func DefaultParameters() (bgv.Parameters, error) {
	return NewParameters(DefaultLogN, DefaultPlaintextModulus)
}
