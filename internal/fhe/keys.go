package fhe

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

// KeyPair holds a BGV secret key and its public key.
type KeyPair struct {
	Secret *rlwe.SecretKey
	Public *rlwe.PublicKey
}

// GenerateKeys creates a fresh key pair for params.
func GenerateKeys(params bgv.Parameters) KeyPair {
	sk, pk := bgv.NewKeyGenerator(params).GenKeyPairNew()
	return KeyPair{Secret: sk, Public: pk}
}

// SaveSecretKey writes sk base64-encoded to path with owner-only permissions.
func SaveSecretKey(path string, sk *rlwe.SecretKey) error {
	return saveKey(path, sk, 0o600)
}

// SavePublicKey writes pk base64-encoded to path.
func SavePublicKey(path string, pk *rlwe.PublicKey) error {
	return saveKey(path, pk, 0o644)
}

// LoadSecretKey reads a key written by [SaveSecretKey].
func LoadSecretKey(path string, params bgv.Parameters) (*rlwe.SecretKey, error) {
	sk := rlwe.NewSecretKey(params)
	if err := loadKey(path, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

// LoadPublicKey reads a key written by [SavePublicKey].
func LoadPublicKey(path string, params bgv.Parameters) (*rlwe.PublicKey, error) {
	pk := rlwe.NewPublicKey(params)
	if err := loadKey(path, pk); err != nil {
		return nil, err
	}
	return pk, nil
}

// EncodePublicKey returns the base64 text form of pk, as stored in key files
// and in chaincode world state.
func EncodePublicKey(pk *rlwe.PublicKey) (string, error) {
	raw, err := pk.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("error marshaling public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func saveKey(path string, key encoding.BinaryMarshaler, perm os.FileMode) error {
	raw, err := key.MarshalBinary()
	if err != nil {
		return fmt.Errorf("error marshaling key: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	if err = os.WriteFile(path, []byte(encoded), perm); err != nil {
		return fmt.Errorf("error writing key file %s: %w", path, err)
	}

	return nil
}

func loadKey(path string, key encoding.BinaryUnmarshaler) error {
	encoded, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading key file %s: %w", path, err)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	if err = key.UnmarshalBinary(raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return nil
}
