package chaincode

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-farm-twin/internal/attestation"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/hyperledger/fabric-chaincode-go/shim"
)

const (
	attestorKeyState   = "ATTESTOR::KEY"
	attestorOwnerState = "ATTESTOR::OWNER"
)

// stubState is the world state of one transaction. The peer's GetState
// only sees committed state, so writes are forwarded to the stub and also
// kept here for later reads in the same transaction. A nil entry marks a
// deletion.
type stubState struct {
	stub   shim.ChaincodeStubInterface
	writes map[string][]byte
}

func newStubState(stub shim.ChaincodeStubInterface) *stubState {
	return &stubState{stub: stub, writes: make(map[string][]byte)}
}

func (s *stubState) GetState(key string) ([]byte, error) {
	if v, ok := s.writes[key]; ok {
		return slices.Clone(v), nil
	}
	return s.stub.GetState(key)
}

func (s *stubState) PutState(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if err := s.stub.PutState(key, value); err != nil {
		return err
	}
	s.writes[key] = slices.Clone(value)
	return nil
}

func (s *stubState) DelState(key string) error {
	if err := s.stub.DelState(key); err != nil {
		return err
	}
	s.writes[key] = nil
	return nil
}

// eventSink publishes contract events as chaincode events. Fabric keeps
// only the last event set in a transaction.
func eventSink(stub shim.ChaincodeStubInterface) service.EventSink {
	return func(_ context.Context, event models.Event) error {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("error encoding event: %w", err)
		}
		return stub.SetEvent(string(event.Name), payload)
	}
}

// stateVerifier checks proofs against the attestor key kept in world state.
// The key is read on every call so a rotation takes effect at once.
type stateVerifier struct {
	state  *stubState
	issuer string
}

func (v stateVerifier) Verify(requestID int64, cleartexts, proof []byte) error {
	raw, err := v.state.GetState(attestorKeyState)
	if err != nil {
		return fmt.Errorf("error reading attestor key: %w", err)
	}
	if len(raw) == 0 {
		return ErrAttestorKeyNotSet
	}

	pub, err := attestation.ParsePublicKeyPEM(raw)
	if err != nil {
		return err
	}

	return attestation.NewVerifier(pub, v.issuer).Verify(requestID, cleartexts, proof)
}

// putAttestorKey stores pemKey for owner. The first caller becomes the
// key's owner and only that identity may rotate it.
func putAttestorKey(state *stubState, owner int64, pemKey []byte) error {
	if _, err := attestation.ParsePublicKeyPEM(pemKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	raw, err := state.GetState(attestorOwnerState)
	if err != nil {
		return fmt.Errorf("error reading attestor owner: %w", err)
	}
	if len(raw) > 0 {
		current, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("error decoding attestor owner: %w", err)
		}
		if current != owner {
			return ErrAttestorKeyLocked
		}
	}

	if err = state.PutState(attestorOwnerState, []byte(strconv.FormatInt(owner, 10))); err != nil {
		return err
	}
	return state.PutState(attestorKeyState, pemKey)
}
