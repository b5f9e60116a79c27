package chaincode

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/attestation"
	"github.com/MKhiriev/go-farm-twin/internal/fhe"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const testIssuer = "farm-oracle"

var (
	fheOnce   sync.Once
	fheParams bgv.Parameters
	fheKeys   fhe.KeyPair
)

func fheFixture(t *testing.T) (bgv.Parameters, fhe.KeyPair) {
	t.Helper()

	fheOnce.Do(func() {
		params, err := fhe.DefaultParameters()
		require.NoError(t, err)
		fheParams = params
		fheKeys = fhe.GenerateKeys(params)
	})

	return fheParams, fheKeys
}

// fakeStub keeps world state in memory the way a peer does: GetState reads
// committed state only, and the writes of a transaction are committed when
// the next transaction reads its timestamp. Only the calls the contract
// makes are implemented; anything else panics on the nil embedded interface.
type fakeStub struct {
	shim.ChaincodeStubInterface

	state   *store.MemoryState
	pending map[string][]byte
	txTime  time.Time
	events  []string
	last    []byte
}

func newFakeStub(txTime time.Time) *fakeStub {
	return &fakeStub{
		state:   store.NewMemoryState(),
		pending: make(map[string][]byte),
		txTime:  txTime,
	}
}

func (s *fakeStub) GetState(key string) ([]byte, error) {
	v, err := s.state.GetState(key)
	if len(v) == 0 {
		return nil, err
	}
	return v, err
}

func (s *fakeStub) PutState(key string, value []byte) error {
	s.pending[key] = append([]byte{}, value...)
	return nil
}

func (s *fakeStub) DelState(key string) error {
	s.pending[key] = nil
	return nil
}

// commit applies the writes of the finished transaction.
func (s *fakeStub) commit() {
	for key, v := range s.pending {
		if v == nil {
			_ = s.state.DelState(key)
		} else {
			_ = s.state.PutState(key, v)
		}
	}
	clear(s.pending)
}

func (s *fakeStub) GetTxID() string { return "tx-1" }

func (s *fakeStub) GetTxTimestamp() (*timestamppb.Timestamp, error) {
	s.commit()
	return timestamppb.New(s.txTime), nil
}

func (s *fakeStub) SetEvent(name string, payload []byte) error {
	s.events = append(s.events, name)
	s.last = payload
	return nil
}

type fakeIdentity struct {
	cid.ClientIdentity

	id  string
	err error
}

func (i fakeIdentity) GetID() (string, error) { return i.id, i.err }

type harness struct {
	contract *FarmContract
	stub     *fakeStub
	enc      *fhe.Encryptor
	dec      *fhe.Decryptor
	signer   *attestation.Signer
	pubPEM   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	params, keys := fheFixture(t)

	pub, priv, err := attestation.GenerateKey()
	require.NoError(t, err)

	pubPath := filepath.Join(t.TempDir(), "attestor.pub")
	require.NoError(t, attestation.SavePublicKey(pubPath, pub))
	pubPEM, err := os.ReadFile(pubPath)
	require.NoError(t, err)

	return &harness{
		contract: NewFarmContract(fhe.NewEvaluator(params), testIssuer, time.Hour, logger.Nop()),
		stub:     newFakeStub(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)),
		enc:      fhe.NewEncryptor(params, keys.Public),
		dec:      fhe.NewDecryptor(params, keys.Secret),
		signer:   attestation.NewSigner(priv, testIssuer),
		pubPEM:   string(pubPEM),
	}
}

func (h *harness) as(identity string) *contractapi.TransactionContext {
	tctx := new(contractapi.TransactionContext)
	tctx.SetStub(h.stub)
	tctx.SetClientIdentity(fakeIdentity{id: identity})
	return tctx
}

func (h *harness) encrypt(t *testing.T, v uint64) []byte {
	t.Helper()
	ct, err := h.enc.Encrypt(v)
	require.NoError(t, err)
	return ct
}

// answer plays the oracle for the pending request id through the
// contract's own feed transactions.
func (h *harness) answer(t *testing.T, id int64) string {
	t.Helper()
	tctx := h.as("oracle")

	raw, err := h.contract.PendingRequests(tctx, 0, 0)
	require.NoError(t, err)

	var feed models.PendingRequestsResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &feed))

	for _, req := range feed.Requests {
		if req.ID != id {
			continue
		}

		values := make([]uint64, len(req.Handles))
		for i, handle := range req.Handles {
			encoded, err := h.contract.GetCiphertext(tctx, string(handle))
			require.NoError(t, err)
			ct, err := base64.StdEncoding.DecodeString(encoded)
			require.NoError(t, err)
			values[i], err = h.dec.Decrypt(ct)
			require.NoError(t, err)
		}

		cleartexts, err := json.Marshal(values)
		require.NoError(t, err)
		proof, err := h.signer.Sign(id, cleartexts)
		require.NoError(t, err)

		cb, err := json.Marshal(models.DecryptionCallback{RequestID: id, Cleartexts: cleartexts, Proof: proof})
		require.NoError(t, err)
		return string(cb)
	}

	t.Fatalf("request %d is not pending", id)
	return ""
}

func TestNewFarmContract_Name(t *testing.T) {
	c := NewFarmContract(nil, testIssuer, 0, logger.Nop())
	assert.Equal(t, ContractName, c.GetName())
}

func TestFarmContract_AggregateRoundTrip(t *testing.T) {
	h := newHarness(t)
	alice := h.as("x509::CN=alice")

	require.NoError(t, h.contract.SetAttestorKey(h.as("x509::CN=admin"), h.pubPEM))

	for _, v := range []uint64{40, 2} {
		out, err := h.contract.AddToAggregate(alice, "total_water", base64.StdEncoding.EncodeToString(h.encrypt(t, v)))
		require.NoError(t, err)

		var agg models.Aggregate
		require.NoError(t, json.Unmarshal([]byte(out), &agg))
		assert.Equal(t, "total_water", agg.Key)
	}

	keys, err := h.contract.GetAggregateKeys(alice)
	require.NoError(t, err)
	assert.JSONEq(t, `["total_water"]`, keys)

	out, err := h.contract.RequestAggregateReveal(alice, "total_water")
	require.NoError(t, err)
	var receipt models.RequestReceipt
	require.NoError(t, json.Unmarshal([]byte(out), &receipt))

	key, err := h.contract.FindKeyByHash(alice, receipt.EntityID)
	require.NoError(t, err)
	assert.Equal(t, "total_water", key)

	callback := h.answer(t, receipt.RequestID)
	out, err = h.contract.AggregateCallback(h.as("oracle"), callback)
	require.NoError(t, err)

	var event models.Event
	require.NoError(t, json.Unmarshal([]byte(out), &event))
	assert.Equal(t, models.EventPlainAggregateResult, event.Name)
	assert.Equal(t, uint64(42), event.Value)
	assert.True(t, h.stub.txTime.Equal(event.CreatedAt), "events carry the transaction timestamp")

	assert.Equal(t, string(models.EventPlainAggregateResult), h.stub.events[len(h.stub.events)-1])
	assert.JSONEq(t, out, string(h.stub.last))

	_, err = h.contract.AggregateCallback(h.as("oracle"), callback)
	assert.ErrorIs(t, err, service.ErrUnknownRequest, "request is consumed by the first callback")
}

func TestFarmContract_AddToAggregateNewKeyInOneTransaction(t *testing.T) {
	h := newHarness(t)

	out, err := h.contract.AddToAggregate(h.as("alice"), "total_feed", base64.StdEncoding.EncodeToString(h.encrypt(t, 9)))
	require.NoError(t, err)

	var agg models.Aggregate
	require.NoError(t, json.Unmarshal([]byte(out), &agg))
	assert.Equal(t, 1, agg.Additions)
	assert.Empty(t, h.stub.state.Keys(), "nothing is committed before the transaction ends")
}

func TestFarmContract_CallbackWithoutAttestorKey(t *testing.T) {
	h := newHarness(t)
	alice := h.as("x509::CN=alice")

	_, err := h.contract.AddToAggregate(alice, "total_water", base64.StdEncoding.EncodeToString(h.encrypt(t, 7)))
	require.NoError(t, err)

	out, err := h.contract.RequestAggregateReveal(alice, "total_water")
	require.NoError(t, err)
	var receipt models.RequestReceipt
	require.NoError(t, json.Unmarshal([]byte(out), &receipt))

	_, err = h.contract.AggregateCallback(h.as("oracle"), h.answer(t, receipt.RequestID))
	assert.ErrorIs(t, err, service.ErrInvalidProof)
	assert.ErrorIs(t, err, ErrAttestorKeyNotSet)
}

func TestFarmContract_SetAttestorKey(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.contract.SetAttestorKey(h.as("admin"), h.pubPEM))
	require.NoError(t, h.contract.SetAttestorKey(h.as("admin"), h.pubPEM), "owner may rotate")

	err := h.contract.SetAttestorKey(h.as("mallory"), h.pubPEM)
	assert.ErrorIs(t, err, ErrAttestorKeyLocked)

	err = h.contract.SetAttestorKey(h.as("admin"), "not a key")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFarmContract_DataAndRecords(t *testing.T) {
	h := newHarness(t)
	alice := h.as("alice")

	value, err := h.contract.GetData(alice, "greeting")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, h.contract.SetData(alice, "greeting", "hello"))
	value, err = h.contract.GetData(alice, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	other, err := h.contract.GetData(h.as("bob"), "greeting")
	require.NoError(t, err)
	assert.Empty(t, other, "keys are scoped per identity")

	require.NoError(t, h.contract.AppendRecord(alice, models.SensorIndexKey, "sensor:a", `{"id":"a"}`))
	index, err := h.contract.GetData(alice, models.SensorIndexKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["sensor:a"]`, index)
}

func TestFarmContract_ReadingsAndTwin(t *testing.T) {
	h := newHarness(t)
	alice := h.as("alice")

	cts, err := json.Marshal(models.ReadingCiphertexts{
		Timestamp:    h.encrypt(t, 1700000000),
		Temperature:  h.encrypt(t, 21),
		Humidity:     h.encrypt(t, 60),
		CO2:          h.encrypt(t, 400),
		Light:        h.encrypt(t, 300),
		SoilMoisture: h.encrypt(t, 35),
	})
	require.NoError(t, err)

	out, err := h.contract.SubmitReading(alice, string(cts))
	require.NoError(t, err)
	var reading models.Reading
	require.NoError(t, json.Unmarshal([]byte(out), &reading))

	_, err = h.contract.GetReading(alice, reading.ID)
	require.NoError(t, err)

	_, err = h.contract.GetReading(h.as("bob"), reading.ID)
	assert.ErrorIs(t, err, service.ErrAccessDenied)

	out, err = h.contract.RequestTwinUpdate(alice, 7, "["+jsonInt(reading.ID)+"]")
	require.NoError(t, err)
	var receipt models.RequestReceipt
	require.NoError(t, json.Unmarshal([]byte(out), &receipt))
	assert.Equal(t, int64(7), receipt.EntityID)

	twin, err := h.contract.GetTwin(h.as("bob"), 7)
	require.NoError(t, err)
	assert.Contains(t, twin, `"id":7`)

	pruned, err := h.contract.PruneExpiredRequests(alice)
	require.NoError(t, err)
	assert.Zero(t, pruned)

	events, err := h.contract.ListEvents(alice, 0, 10)
	require.NoError(t, err)
	var page models.EventsResponse
	require.NoError(t, json.Unmarshal([]byte(events), &page))
	assert.NotZero(t, page.Length)
}

func TestFarmContract_Rejections(t *testing.T) {
	h := newHarness(t)

	tctx := new(contractapi.TransactionContext)
	tctx.SetStub(h.stub)
	tctx.SetClientIdentity(fakeIdentity{err: errors.New("no creator")})

	_, err := h.contract.SubmitReading(tctx, "{}")
	assert.ErrorIs(t, err, ErrMissingIdentity)

	_, err = h.contract.SubmitReading(h.as("alice"), "not json")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = h.contract.AddToAggregate(h.as("alice"), "total_water", "%%%")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = h.contract.RequestTwinUpdate(h.as("alice"), 7, "[]")
	assert.ErrorIs(t, err, service.ErrEmptyReadingList)

	_, err = h.contract.TwinCallback(h.as("oracle"), "{")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func jsonInt(v int64) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}
