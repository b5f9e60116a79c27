package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-farm-twin/models"
)

// Field names accepted by [FarmValidator.Validate].
const (
	FieldCiphertexts  = "ciphertexts"
	FieldReadingIDs   = "reading_ids"
	FieldKey          = "key"
	FieldValue        = "value"
	FieldIndexKey     = "index_key"
	FieldRecordKey    = "record_key"
	FieldRequestID    = "request_id"
	FieldProof        = "proof"
	FieldLogin        = "login"
	FieldPassword     = "password"
	FieldRecordDiffer = "record_differs_from_index"
)

// Limits enforced on request payloads.
const (
	MaxCiphertextSize = 4 << 20
	MaxKeyLength      = 256
	MaxValueSize      = 1 << 20
	MaxReadingIDs     = 512
)

// FarmValidator validates the request payloads of the contract host.
type FarmValidator struct{}

func NewFarmValidator() Validator {
	return &FarmValidator{}
}

// Validate dispatches on the type of obj. Without fields every field of the
// type is checked.
func (v *FarmValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReadingCiphertexts:
		return v.validateReading(value, fields...)
	case *models.ReadingCiphertexts:
		return v.validateReading(*value, fields...)

	case models.ReadingIDsRequest:
		return v.validateReadingIDs(value, fields...)
	case *models.ReadingIDsRequest:
		return v.validateReadingIDs(*value, fields...)

	case models.AggregateDeltaRequest:
		return validateCiphertext(value.Ciphertext)
	case *models.AggregateDeltaRequest:
		return validateCiphertext(value.Ciphertext)

	case models.DataEntry:
		return v.validateDataEntry(value, fields...)
	case *models.DataEntry:
		return v.validateDataEntry(*value, fields...)

	case models.RecordAppend:
		return v.validateRecordAppend(value, fields...)
	case *models.RecordAppend:
		return v.validateRecordAppend(*value, fields...)

	case models.DecryptionCallback:
		return v.validateCallback(value, fields...)
	case *models.DecryptionCallback:
		return v.validateCallback(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateCiphertext(ct []byte) error {
	if len(ct) == 0 {
		return ErrEmptyCiphertext
	}
	if len(ct) > MaxCiphertextSize {
		return ErrCiphertextTooLarge
	}
	return nil
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	return nil
}

func (v *FarmValidator) validateReading(cts models.ReadingCiphertexts, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCiphertexts}
	}

	names := []string{"timestamp", "temperature", "humidity", "co2", "light", "soil_moisture"}
	for _, f := range fields {
		if f != FieldCiphertexts {
			return ErrUnknownField
		}
		for i, ct := range cts.All() {
			if err := validateCiphertext(ct); err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}
		}
	}

	return nil
}

func (v *FarmValidator) validateReadingIDs(req models.ReadingIDsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReadingIDs}
	}

	for _, f := range fields {
		if f != FieldReadingIDs {
			return ErrUnknownField
		}
		if len(req.ReadingIDs) == 0 {
			return ErrEmptyReadingIDs
		}
		if len(req.ReadingIDs) > MaxReadingIDs {
			return fmt.Errorf("%w: at most %d", ErrInvalidReadingID, MaxReadingIDs)
		}

		seen := make(map[int64]struct{}, len(req.ReadingIDs))
		for i, id := range req.ReadingIDs {
			if id <= 0 {
				return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidReadingID)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateReadingID)
			}
			seen[id] = struct{}{}
		}
	}

	return nil
}

func (v *FarmValidator) validateDataEntry(entry models.DataEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := validateKey(entry.Key); err != nil {
				return err
			}
		case FieldValue:
			if len(entry.Value) > MaxValueSize {
				return ErrValueTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FarmValidator) validateRecordAppend(rec models.RecordAppend, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIndexKey, FieldRecordKey, FieldValue, FieldRecordDiffer}
	}

	for _, f := range fields {
		switch f {
		case FieldIndexKey:
			if err := validateKey(rec.IndexKey); err != nil {
				return fmt.Errorf("index: %w", err)
			}
		case FieldRecordKey:
			if err := validateKey(rec.RecordKey); err != nil {
				return fmt.Errorf("record: %w", err)
			}
		case FieldValue:
			if len(rec.Value) > MaxValueSize {
				return ErrValueTooLarge
			}
		case FieldRecordDiffer:
			if rec.IndexKey == rec.RecordKey {
				return ErrSameRecordAndIndex
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FarmValidator) validateCallback(cb models.DecryptionCallback, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequestID, FieldProof}
	}

	for _, f := range fields {
		switch f {
		case FieldRequestID:
			if cb.RequestID <= 0 {
				return ErrInvalidRequestID
			}
		case FieldProof:
			if len(cb.Proof) == 0 {
				return ErrEmptyProof
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FarmValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
