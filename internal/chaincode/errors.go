package chaincode

import "errors"

var (
	// ErrAttestorKeyNotSet is returned by callbacks before SetAttestorKey
	// was called.
	ErrAttestorKeyNotSet = errors.New("attestor key is not set")

	// ErrAttestorKeyLocked is returned when a different identity tries to
	// replace the attestor key.
	ErrAttestorKeyLocked = errors.New("attestor key is owned by another identity")

	// ErrMissingIdentity is returned when the proposal carries no usable
	// client identity.
	ErrMissingIdentity = errors.New("missing client identity")

	// ErrInvalidArgument is returned for transaction arguments that do not
	// decode.
	ErrInvalidArgument = errors.New("invalid transaction argument")
)
