package chaincode

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/fhe"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/rs/zerolog"
)

// ContractName is the name the contract is registered under.
const ContractName = "farmtwin"

// FarmContract is the farm twin contract as Fabric chaincode.
type FarmContract struct {
	contractapi.Contract

	evaluator  *fhe.Evaluator
	issuer     string
	requestTTL time.Duration
	logger     *logger.Logger
}

// NewFarmContract returns the contract for evaluator. Proofs must be issued
// by issuer; requestTTL of zero disables request expiry.
func NewFarmContract(evaluator *fhe.Evaluator, issuer string, requestTTL time.Duration, log *logger.Logger) *FarmContract {
	c := &FarmContract{
		evaluator:  evaluator,
		issuer:     issuer,
		requestTTL: requestTTL,
		logger:     log,
	}
	c.Name = ContractName
	return c
}

// tx is the per-transaction view of the contract.
type tx struct {
	ctx      context.Context
	owner    int64
	state    *stubState
	contract *service.Contract
}

func (c *FarmContract) begin(tctx contractapi.TransactionContextInterface) (*tx, error) {
	stub := tctx.GetStub()

	ts, err := stub.GetTxTimestamp()
	if err != nil {
		return nil, fmt.Errorf("error reading transaction timestamp: %w", err)
	}
	txTime := ts.AsTime().UTC()

	var owner int64
	if identity := tctx.GetClientIdentity(); identity != nil {
		if id, err := identity.GetID(); err == nil && id != "" {
			owner = utils.OwnerIDFromIdentity(id)
		}
	}

	l := c.logger.GetChildLogger()
	l.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("tx_id", stub.GetTxID()).Int64("owner", owner)
	})

	state := newStubState(stub)
	contract := service.NewContract(
		store.NewDirectStateLedger(state),
		store.NewStateCiphertextStorage(state),
		c.evaluator,
		stateVerifier{state: state, issuer: c.issuer},
		c.requestTTL,
		service.WithClock(func() time.Time { return txTime }),
		service.WithEventSink(eventSink(stub)),
	)

	return &tx{
		ctx:      l.WithContext(context.Background()),
		owner:    owner,
		state:    state,
		contract: contract,
	}, nil
}

// caller is begin for transactions that act on behalf of an owner.
func (c *FarmContract) caller(tctx contractapi.TransactionContextInterface) (*tx, error) {
	t, err := c.begin(tctx)
	if err != nil {
		return nil, err
	}
	if t.owner == 0 {
		return nil, ErrMissingIdentity
	}
	return t, nil
}

func marshal(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error encoding result: %w", err)
	}
	return string(raw), nil
}

func unmarshal(arg string, v any) error {
	if err := json.Unmarshal([]byte(arg), v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

// SubmitReading stores the six ciphertexts of a reading, given as a JSON
// object, and returns the created reading.
func (c *FarmContract) SubmitReading(tctx contractapi.TransactionContextInterface, ciphertexts string) (string, error) {
	t, err := c.caller(tctx)
	if err != nil {
		return "", err
	}

	var cts models.ReadingCiphertexts
	if err = unmarshal(ciphertexts, &cts); err != nil {
		return "", err
	}

	reading, err := service.NewReadingService(t.contract).SubmitReading(t.ctx, t.owner, cts)
	if err != nil {
		return "", err
	}
	return marshal(reading)
}

// GetReading returns one of the caller's readings.
func (c *FarmContract) GetReading(tctx contractapi.TransactionContextInterface, readingID int64) (string, error) {
	t, err := c.caller(tctx)
	if err != nil {
		return "", err
	}

	reading, err := service.NewReadingService(t.contract).GetReading(t.ctx, t.owner, readingID)
	if err != nil {
		return "", err
	}
	return marshal(reading)
}

// RequestTwinUpdate folds the readings listed in readingIDs (a JSON array)
// into twinID and opens a decryption request.
func (c *FarmContract) RequestTwinUpdate(tctx contractapi.TransactionContextInterface, twinID int64, readingIDs string) (string, error) {
	t, err := c.caller(tctx)
	if err != nil {
		return "", err
	}

	var ids []int64
	if err = unmarshal(readingIDs, &ids); err != nil {
		return "", err
	}

	receipt, err := service.NewTwinService(t.contract).RequestTwinUpdate(t.ctx, t.owner, twinID, ids)
	if err != nil {
		return "", err
	}
	return marshal(receipt)
}

// GetTwin returns the twin, unrevealed before its first callback.
func (c *FarmContract) GetTwin(tctx contractapi.TransactionContextInterface, twinID int64) (string, error) {
	t, err := c.begin(tctx)
	if err != nil {
		return "", err
	}

	twin, err := service.NewTwinService(t.contract).GetTwin(t.ctx, twinID)
	if err != nil {
		return "", err
	}
	return marshal(twin)
}

// RequestRecommendation is RequestTwinUpdate for the recommendation of twinID.
func (c *FarmContract) RequestRecommendation(tctx contractapi.TransactionContextInterface, twinID int64, readingIDs string) (string, error) {
	t, err := c.caller(tctx)
	if err != nil {
		return "", err
	}

	var ids []int64
	if err = unmarshal(readingIDs, &ids); err != nil {
		return "", err
	}

	receipt, err := service.NewRecommendationService(t.contract).RequestRecommendation(t.ctx, t.owner, twinID, ids)
	if err != nil {
		return "", err
	}
	return marshal(receipt)
}

func (c *FarmContract) GetRecommendation(tctx contractapi.TransactionContextInterface, twinID int64) (string, error) {
	t, err := c.begin(tctx)
	if err != nil {
		return "", err
	}

	rec, err := service.NewRecommendationService(t.contract).GetRecommendation(t.ctx, twinID)
	if err != nil {
		return "", err
	}
	return marshal(rec)
}

// AddToAggregate adds the base64 ciphertext delta to the aggregate key.
func (c *FarmContract) AddToAggregate(tctx contractapi.TransactionContextInterface, key, delta string) (string, error) {
	t, err := c.caller(tctx)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(delta)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	agg, err := service.NewAggregateService(t.contract).AddToAggregate(t.ctx, t.owner, key, raw)
	if err != nil {
		return "", err
	}
	return marshal(agg)
}

func (c *FarmContract) RequestAggregateReveal(tctx contractapi.TransactionContextInterface, key string) (string, error) {
	t, err := c.caller(tctx)
	if err != nil {
		return "", err
	}

	receipt, err := service.NewAggregateService(t.contract).RequestAggregateReveal(t.ctx, t.owner, key)
	if err != nil {
		return "", err
	}
	return marshal(receipt)
}

// FindKeyByHash returns the aggregate key whose entity ID is keyHash.
func (c *FarmContract) FindKeyByHash(tctx contractapi.TransactionContextInterface, keyHash int64) (string, error) {
	t, err := c.begin(tctx)
	if err != nil {
		return "", err
	}
	return service.NewAggregateService(t.contract).FindKeyByHash(t.ctx, keyHash)
}

// GetAggregateKeys returns every aggregate key as a JSON array.
func (c *FarmContract) GetAggregateKeys(tctx contractapi.TransactionContextInterface) (string, error) {
	t, err := c.begin(tctx)
	if err != nil {
		return "", err
	}

	keys, err := service.NewAggregateService(t.contract).Keys(t.ctx)
	if err != nil {
		return "", err
	}
	return marshal(keys)
}

// TwinCallback applies a decryption callback, given as JSON, to a twin.
func (c *FarmContract) TwinCallback(tctx contractapi.TransactionContextInterface, callback string) (string, error) {
	t, cb, err := c.callback(tctx, callback)
	if err != nil {
		return "", err
	}

	twin, err := service.NewCallbackService(t.contract).HandleTwinCallback(t.ctx, cb)
	if err != nil {
		return "", err
	}
	return marshal(twin)
}

func (c *FarmContract) RecommendationCallback(tctx contractapi.TransactionContextInterface, callback string) (string, error) {
	t, cb, err := c.callback(tctx, callback)
	if err != nil {
		return "", err
	}

	rec, err := service.NewCallbackService(t.contract).HandleRecommendationCallback(t.ctx, cb)
	if err != nil {
		return "", err
	}
	return marshal(rec)
}

// AggregateCallback returns the AggregateRevealed event.
func (c *FarmContract) AggregateCallback(tctx contractapi.TransactionContextInterface, callback string) (string, error) {
	t, cb, err := c.callback(tctx, callback)
	if err != nil {
		return "", err
	}

	event, err := service.NewCallbackService(t.contract).HandleAggregateCallback(t.ctx, cb)
	if err != nil {
		return "", err
	}
	return marshal(event)
}

func (c *FarmContract) callback(tctx contractapi.TransactionContextInterface, arg string) (*tx, models.DecryptionCallback, error) {
	var cb models.DecryptionCallback
	if err := unmarshal(arg, &cb); err != nil {
		return nil, cb, err
	}

	t, err := c.begin(tctx)
	if err != nil {
		return nil, cb, err
	}
	return t, cb, nil
}

// GetData returns the caller's value under key, empty when unset.
func (c *FarmContract) GetData(tctx contractapi.TransactionContextInterface, key string) (string, error) {
	t, err := c.caller(tctx)
	if err != nil {
		return "", err
	}

	value, err := service.NewDataService(t.contract).GetData(t.ctx, t.owner, key)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (c *FarmContract) SetData(tctx contractapi.TransactionContextInterface, key, value string) error {
	t, err := c.caller(tctx)
	if err != nil {
		return err
	}
	return service.NewDataService(t.contract).SetData(t.ctx, t.owner, key, []byte(value))
}

// AppendRecord stores value under recordKey and appends recordKey to the
// JSON index under indexKey.
func (c *FarmContract) AppendRecord(tctx contractapi.TransactionContextInterface, indexKey, recordKey, value string) error {
	t, err := c.caller(tctx)
	if err != nil {
		return err
	}

	return service.NewDataService(t.contract).AppendRecord(t.ctx, t.owner, models.RecordAppend{
		IndexKey:  indexKey,
		RecordKey: recordKey,
		Value:     []byte(value),
	})
}

// SetAttestorKey installs the PEM Ed25519 key that callback proofs are
// checked against.
func (c *FarmContract) SetAttestorKey(tctx contractapi.TransactionContextInterface, pemKey string) error {
	t, err := c.caller(tctx)
	if err != nil {
		return err
	}

	if err = putAttestorKey(t.state, t.owner, []byte(pemKey)); err != nil {
		return err
	}

	logger.FromContext(t.ctx).Info().Msg("attestor key updated")
	return nil
}

// PendingRequests returns up to limit live decryption requests with an ID
// greater than afterID.
func (c *FarmContract) PendingRequests(tctx contractapi.TransactionContextInterface, afterID int64, limit int) (string, error) {
	t, err := c.begin(tctx)
	if err != nil {
		return "", err
	}

	reqs, err := service.NewOracleFeedService(t.contract).PendingRequests(t.ctx, afterID, limit)
	if err != nil {
		return "", err
	}
	return marshal(models.PendingRequestsResponse{Requests: reqs, Length: len(reqs)})
}

// GetCiphertext returns the stored ciphertext behind handle, base64.
func (c *FarmContract) GetCiphertext(tctx contractapi.TransactionContextInterface, handle string) (string, error) {
	t, err := c.begin(tctx)
	if err != nil {
		return "", err
	}

	raw, err := service.NewOracleFeedService(t.contract).Ciphertext(t.ctx, models.Handle(handle))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func (c *FarmContract) ListEvents(tctx contractapi.TransactionContextInterface, afterSeq int64, limit int) (string, error) {
	t, err := c.begin(tctx)
	if err != nil {
		return "", err
	}

	events, err := service.NewEventService(t.contract).List(t.ctx, afterSeq, limit)
	if err != nil {
		return "", err
	}
	return marshal(models.EventsResponse{Events: events, Length: len(events)})
}

// PruneExpiredRequests deletes expired requests and returns how many.
func (c *FarmContract) PruneExpiredRequests(tctx contractapi.TransactionContextInterface) (int, error) {
	t, err := c.begin(tctx)
	if err != nil {
		return 0, err
	}
	return service.NewMaintenanceService(t.contract).PruneExpiredRequests(t.ctx)
}
