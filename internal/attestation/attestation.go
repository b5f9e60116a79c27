// Package attestation signs and verifies the proofs that accompany
// decryption callbacks.
//
// A proof is a compact EdDSA JWT issued by the decryption oracle. Its claims
// bind the request ID and the SHA-256 digest of the exact cleartext bytes,
// so a proof can be replayed neither for another request nor with altered
// cleartexts.
package attestation

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidProof is returned for proofs that fail signature, issuer or
	// binding checks.
	ErrInvalidProof = errors.New("invalid decryption proof")
	// ErrInvalidKey is returned for unreadable key material.
	ErrInvalidKey = errors.New("invalid attestation key")
)

// Claims is the payload of a decryption proof.
type Claims struct {
	// RequestID is the correlator request the cleartexts answer.
	RequestID int64 `json:"rid"`

	// CleartextHash is the hex SHA-256 digest of the cleartext bytes.
	CleartextHash string `json:"cth"`

	jwt.RegisteredClaims
}

// Signer issues proofs. Held by the decryption oracle only.
type Signer struct {
	key    ed25519.PrivateKey
	issuer string
	now    func() time.Time
}

// NewSigner returns a Signer for key.
func NewSigner(key ed25519.PrivateKey, issuer string) *Signer {
	return &Signer{key: key, issuer: issuer, now: time.Now}
}

// Sign returns the proof for (requestID, cleartexts).
func (s *Signer) Sign(requestID int64, cleartexts []byte) ([]byte, error) {
	claims := Claims{
		RequestID:     requestID,
		CleartextHash: utils.SHA256Hex(cleartexts),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   s.issuer,
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(s.key)
	if err != nil {
		return nil, fmt.Errorf("error signing proof: %w", err)
	}

	return []byte(signed), nil
}

// Verifier checks proofs against the oracle public key.
type Verifier struct {
	key    ed25519.PublicKey
	issuer string
}

// NewVerifier returns a Verifier accepting proofs signed by key for issuer.
func NewVerifier(key ed25519.PublicKey, issuer string) *Verifier {
	return &Verifier{key: key, issuer: issuer}
}

// Verify returns nil only if proof was issued for exactly requestID and
// cleartexts.
func (v *Verifier) Verify(requestID int64, cleartexts, proof []byte) error {
	if len(proof) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidProof)
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(string(proof), &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}

	if claims.RequestID != requestID {
		return fmt.Errorf("%w: issued for request %d", ErrInvalidProof, claims.RequestID)
	}
	if claims.CleartextHash != utils.SHA256Hex(cleartexts) {
		return fmt.Errorf("%w: cleartext digest mismatch", ErrInvalidProof)
	}

	return nil
}

// GenerateKey returns a fresh Ed25519 key pair.
func GenerateKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	return ed25519.GenerateKey(rand.Reader)
}

// SavePrivateKey writes key as a PKCS#8 PEM file readable by the owner only.
func SavePrivateKey(path string, key ed25519.PrivateKey) error {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return fmt.Errorf("error marshaling private key: %w", err)
	}
	return os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600)
}

// SavePublicKey writes key as a PKIX PEM file.
func SavePublicKey(path string, key ed25519.PublicKey) error {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return fmt.Errorf("error marshaling public key: %w", err)
	}
	return os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o644)
}

// LoadPrivateKey reads a key written by SavePrivateKey.
func LoadPrivateKey(path string) (ed25519.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading private key %s: %w", path, err)
	}

	key, err := jwt.ParseEdPrivateKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return asPrivate(key)
}

// LoadPublicKey reads a key written by SavePublicKey.
func LoadPublicKey(path string) (ed25519.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading public key %s: %w", path, err)
	}
	return ParsePublicKeyPEM(raw)
}

// ParsePublicKeyPEM decodes a PKIX PEM Ed25519 public key. The chaincode
// keeps the oracle key in world state in this form.
func ParsePublicKeyPEM(raw []byte) (ed25519.PublicKey, error) {
	key, err := jwt.ParseEdPublicKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	pub, ok := key.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an ed25519 public key", ErrInvalidKey)
	}

	return pub, nil
}

func asPrivate(key crypto.PrivateKey) (ed25519.PrivateKey, error) {
	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an ed25519 private key", ErrInvalidKey)
	}
	return priv, nil
}
