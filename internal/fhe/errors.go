package fhe

import "errors"

var (
	// ErrInvalidCiphertext is returned when bytes cannot be unmarshaled into a
	// BGV ciphertext of the expected shape.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrNothingToSum is returned by [Evaluator.Sum] when called without operands.
	ErrNothingToSum = errors.New("no ciphertexts to sum")

	// ErrValueOverflow is returned when a decrypted value does not fit in uint64.
	ErrValueOverflow = errors.New("decrypted value overflows uint64")

	// ErrInvalidKey is returned when a key file cannot be decoded.
	ErrInvalidKey = errors.New("invalid key material")
)
