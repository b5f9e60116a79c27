package store

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/MKhiriev/go-farm-twin/models"
)

// World-state key layout.
const (
	readingPrefix    = "READING::"
	twinPrefix       = "TWIN::"
	recPrefix        = "REC::"
	aggPrefix        = "AGG::"
	aggHashPrefix    = "AGGHASH::"
	aggKeysKey       = "AGGKEYS"
	requestPrefix    = "REQ::"
	requestIndexKey  = "REQIDX"
	eventPrefix      = "EVT::"
	dataPrefix       = "DATA::"
	aclPrefix        = "ACL::"
	seqPrefix        = "SEQ::"
	userPrefix       = "USER::"
	ciphertextPrefix = "CT::"
)

const userSequence = "users"

func idKey(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}

// NewStateRepositories returns repositories storing JSON documents in ws.
func NewStateRepositories(ws WorldState) Repositories {
	return Repositories{
		Readings:        stateReadings{ws},
		Twins:           stateTwins{ws},
		Recommendations: stateRecommendations{ws},
		Aggregates:      stateAggregates{ws},
		Requests:        stateRequests{ws},
		Events:          stateEvents{ws},
		Data:            stateData{ws},
		ACL:             stateACL{ws},
		Counters:        stateCounters{ws},
		Users:           stateUsers{ws},
	}
}

type stateReadings struct{ ws WorldState }

func (s stateReadings) Create(_ context.Context, reading models.Reading) error {
	return putJSON(s.ws, idKey(readingPrefix, reading.ID), reading)
}

func (s stateReadings) Get(_ context.Context, id int64) (models.Reading, error) {
	var reading models.Reading
	ok, err := getJSON(s.ws, idKey(readingPrefix, id), &reading)
	if err != nil {
		return models.Reading{}, err
	}
	if !ok {
		return models.Reading{}, ErrReadingNotFound
	}
	return reading, nil
}

type stateTwins struct{ ws WorldState }

func (s stateTwins) Get(_ context.Context, id int64) (models.Twin, error) {
	var twin models.Twin
	ok, err := getJSON(s.ws, idKey(twinPrefix, id), &twin)
	if err != nil {
		return models.Twin{}, err
	}
	if !ok {
		return models.Twin{}, ErrTwinNotFound
	}
	return twin, nil
}

func (s stateTwins) Save(_ context.Context, twin models.Twin) error {
	return putJSON(s.ws, idKey(twinPrefix, twin.ID), twin)
}

type stateRecommendations struct{ ws WorldState }

func (s stateRecommendations) Get(_ context.Context, id int64) (models.Recommendation, error) {
	var rec models.Recommendation
	ok, err := getJSON(s.ws, idKey(recPrefix, id), &rec)
	if err != nil {
		return models.Recommendation{}, err
	}
	if !ok {
		return models.Recommendation{}, ErrRecommendationNotFound
	}
	return rec, nil
}

func (s stateRecommendations) Save(_ context.Context, rec models.Recommendation) error {
	return putJSON(s.ws, idKey(recPrefix, rec.ID), rec)
}

type stateAggregates struct{ ws WorldState }

func (s stateAggregates) Get(_ context.Context, key string) (models.Aggregate, error) {
	var agg models.Aggregate
	ok, err := getJSON(s.ws, aggPrefix+key, &agg)
	if err != nil {
		return models.Aggregate{}, err
	}
	if !ok {
		return models.Aggregate{}, ErrAggregateNotFound
	}
	return agg, nil
}

func (s stateAggregates) Create(ctx context.Context, agg models.Aggregate) error {
	if _, err := s.Get(ctx, agg.Key); err == nil {
		return ErrAggregateExists
	}

	existing, err := s.FindKeyByHash(ctx, agg.KeyHash)
	if err == nil {
		return fmt.Errorf("%w: %q and %q", ErrKeyHashCollision, existing, agg.Key)
	}

	keys, err := s.Keys(ctx)
	if err != nil {
		return err
	}

	if err = putJSON(s.ws, aggPrefix+agg.Key, agg); err != nil {
		return err
	}
	if err = putJSON(s.ws, idKey(aggHashPrefix, agg.KeyHash), agg.Key); err != nil {
		return err
	}
	return putJSON(s.ws, aggKeysKey, append(keys, agg.Key))
}

func (s stateAggregates) UpdateHandle(ctx context.Context, key string, handle models.Handle, additions int, updatedAt time.Time) error {
	agg, err := s.Get(ctx, key)
	if err != nil {
		return err
	}

	agg.Handle = handle
	agg.Additions = additions
	agg.UpdatedAt = updatedAt

	return putJSON(s.ws, aggPrefix+key, agg)
}

func (s stateAggregates) Keys(_ context.Context) ([]string, error) {
	keys := make([]string, 0)
	if _, err := getJSON(s.ws, aggKeysKey, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s stateAggregates) FindKeyByHash(_ context.Context, keyHash int64) (string, error) {
	var key string
	ok, err := getJSON(s.ws, idKey(aggHashPrefix, keyHash), &key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrAggregateNotFound
	}
	return key, nil
}

// stateRequests keeps REQIDX, a sorted list of live request IDs, next to the
// requests themselves.
type stateRequests struct{ ws WorldState }

func (s stateRequests) index() ([]int64, error) {
	ids := make([]int64, 0)
	if _, err := getJSON(s.ws, requestIndexKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s stateRequests) Register(_ context.Context, req models.PendingRequest) error {
	ids, err := s.index()
	if err != nil {
		return err
	}

	if err = putJSON(s.ws, idKey(requestPrefix, req.ID), req); err != nil {
		return err
	}

	pos, found := slices.BinarySearch(ids, req.ID)
	if found {
		return nil
	}
	return putJSON(s.ws, requestIndexKey, slices.Insert(ids, pos, req.ID))
}

func (s stateRequests) Get(_ context.Context, id int64) (models.PendingRequest, error) {
	var req models.PendingRequest
	ok, err := getJSON(s.ws, idKey(requestPrefix, id), &req)
	if err != nil {
		return models.PendingRequest{}, err
	}
	if !ok {
		return models.PendingRequest{}, ErrRequestNotFound
	}
	return req, nil
}

func (s stateRequests) Delete(_ context.Context, id int64) error {
	ids, err := s.index()
	if err != nil {
		return err
	}

	if err = s.ws.DelState(idKey(requestPrefix, id)); err != nil {
		return fmt.Errorf("error deleting request %d: %w", id, err)
	}

	pos, found := slices.BinarySearch(ids, id)
	if !found {
		return nil
	}
	return putJSON(s.ws, requestIndexKey, slices.Delete(ids, pos, pos+1))
}

func (s stateRequests) List(ctx context.Context, afterID int64, limit int) ([]models.PendingRequest, error) {
	ids, err := s.index()
	if err != nil {
		return nil, err
	}
	start, _ := slices.BinarySearch(ids, afterID+1)
	ids = ids[start:]

	requests := make([]models.PendingRequest, 0, min(len(ids), max(limit, 0)))
	for _, id := range ids {
		if len(requests) >= limit {
			break
		}
		req, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (s stateRequests) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	ids, err := s.index()
	if err != nil {
		return 0, err
	}

	kept := make([]int64, 0, len(ids))
	for _, id := range ids {
		req, err := s.Get(ctx, id)
		if err != nil {
			return 0, err
		}
		if !req.Expired(now) {
			kept = append(kept, id)
			continue
		}
		if err = s.ws.DelState(idKey(requestPrefix, id)); err != nil {
			return 0, fmt.Errorf("error deleting request %d: %w", id, err)
		}
	}

	removed := len(ids) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, putJSON(s.ws, requestIndexKey, kept)
}

// stateEvents relies on sequence numbers being contiguous: List stops at
// the first missing one.
type stateEvents struct{ ws WorldState }

func (s stateEvents) Append(_ context.Context, event models.Event) error {
	return putJSON(s.ws, idKey(eventPrefix, event.Seq), event)
}

func (s stateEvents) List(_ context.Context, afterSeq int64, limit int) ([]models.Event, error) {
	events := make([]models.Event, 0)
	for seq := afterSeq + 1; len(events) < limit; seq++ {
		var ev models.Event
		ok, err := getJSON(s.ws, idKey(eventPrefix, seq), &ev)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		events = append(events, ev)
	}
	return events, nil
}

type stateData struct{ ws WorldState }

func dataKey(owner int64, key string) string {
	return dataPrefix + strconv.FormatInt(owner, 10) + "::" + key
}

func (s stateData) Get(_ context.Context, owner int64, key string) ([]byte, error) {
	var value []byte
	ok, err := getJSON(s.ws, dataKey(owner, key), &value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDataNotFound
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (s stateData) Put(_ context.Context, owner int64, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	return putJSON(s.ws, dataKey(owner, key), value)
}

type stateACL struct{ ws WorldState }

func aclKey(kind string, id int64) string {
	return aclPrefix + kind + "::" + strconv.FormatInt(id, 10)
}

func (s stateACL) Owner(_ context.Context, kind string, id int64) (int64, error) {
	var owner int64
	if _, err := getJSON(s.ws, aclKey(kind, id), &owner); err != nil {
		return 0, err
	}
	return owner, nil
}

func (s stateACL) Claim(ctx context.Context, kind string, id int64, owner int64) error {
	current, err := s.Owner(ctx, kind, id)
	if err != nil {
		return err
	}
	if current != 0 {
		return ErrAlreadyClaimed
	}
	return putJSON(s.ws, aclKey(kind, id), owner)
}

type stateCounters struct{ ws WorldState }

func (s stateCounters) Next(_ context.Context, name string) (int64, error) {
	var value int64
	if _, err := getJSON(s.ws, seqPrefix+name, &value); err != nil {
		return 0, err
	}
	value++
	return value, putJSON(s.ws, seqPrefix+name, value)
}

type stateUsers struct{ ws WorldState }

func (s stateUsers) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if _, err := s.FindUserByLogin(ctx, user.Login); err == nil {
		return models.User{}, ErrLoginAlreadyExists
	}

	id, err := stateCounters(s).Next(ctx, userSequence)
	if err != nil {
		return models.User{}, err
	}

	user.UserID = id
	user.Password = ""
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return user, putJSON(s.ws, userPrefix+user.Login, storedUser{
		UserID:       user.UserID,
		Login:        user.Login,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
}

func (s stateUsers) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	var stored storedUser
	ok, err := getJSON(s.ws, userPrefix+login, &stored)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return models.User{
		UserID:       stored.UserID,
		Login:        stored.Login,
		PasswordHash: stored.PasswordHash,
		CreatedAt:    stored.CreatedAt,
	}, nil
}

// storedUser exists because models.User hides its ID and hash from JSON.
type storedUser struct {
	UserID       int64     `json:"user_id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
