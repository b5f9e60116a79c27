package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCiphertext    = errors.New("ciphertext is required")
	ErrCiphertextTooLarge = errors.New("ciphertext is too large")
	ErrEmptyReadingIDs    = errors.New("reading IDs list cannot be empty")
	ErrInvalidReadingID   = errors.New("invalid reading ID")
	ErrDuplicateReadingID = errors.New("duplicate reading ID")
	ErrEmptyKey           = errors.New("key is required")
	ErrKeyTooLong         = errors.New("key is too long")
	ErrValueTooLarge      = errors.New("value is too large")
	ErrSameRecordAndIndex = errors.New("record key must differ from index key")
	ErrInvalidRequestID   = errors.New("invalid request ID")
	ErrEmptyProof         = errors.New("proof is required")
	ErrEmptyLogin         = errors.New("login is required")
	ErrEmptyPassword      = errors.New("password is required")
)
