package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks stored password hashes for contract host
// accounts.
type PasswordHasher interface {
	// Hash returns the encoded hash of password, including its salt and
	// cost parameters.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value is an error, a mismatch is not.
	Verify(password, encoded string) (bool, error)
}
