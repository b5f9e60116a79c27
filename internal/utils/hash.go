package utils

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/MKhiriev/go-farm-twin/models"
	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the legacy Keccak-256 digest of data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// RequestTag returns the correlator tag of a request kind: the hex
// Keccak-256 digest of its name.
func RequestTag(kind models.RequestKind) string {
	return hex.EncodeToString(Keccak256([]byte(kind)))
}

// EntityIDFromKey maps a string key to a positive int64 entity ID using the
// first eight bytes of its Keccak-256 digest. Zero is reserved for "absent"
// and is remapped to one.
func EntityIDFromKey(key string) int64 {
	digest := Keccak256([]byte(key))
	id := int64(binary.BigEndian.Uint64(digest[:8]) & 0x7fffffffffffffff)
	if id == 0 {
		return 1
	}
	return id
}

// OwnerIDFromIdentity maps an external identity string (for example a Fabric
// client identity) to an owner ID in the same space as user IDs.
func OwnerIDFromIdentity(identity string) int64 {
	return EntityIDFromKey("identity:" + identity)
}

// ContentHandle returns the content address of a ciphertext.
func ContentHandle(data []byte) models.Handle {
	sum := sha256.Sum256(data)
	return models.Handle(hex.EncodeToString(sum[:]))
}

// SHA256Hex returns the hex SHA-256 digest of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
