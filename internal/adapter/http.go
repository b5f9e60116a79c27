package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter returns a [ServerAdapter] for the contract host at
// cfg.ServerURL. A bare host:port is treated as http.
func NewHTTPServerAdapter(cfg config.Adapter) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout)}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

// authenticate posts the credentials and reads the session token from the
// Authorization response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, Password: user.Password}).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) SubmitReading(ctx context.Context, cts models.ReadingCiphertexts) (models.Reading, error) {
	var reading models.Reading

	req, err := h.digestedRequest(ctx, cts)
	if err != nil {
		return models.Reading{}, err
	}

	resp, err := req.
		SetResult(&reading).
		Post("/api/readings")
	if err != nil {
		return models.Reading{}, fmt.Errorf("submit reading request: %w", err)
	}

	return reading, mapHTTPError(resp)
}

func (h *httpServerAdapter) GetReading(ctx context.Context, readingID int64) (models.Reading, error) {
	var reading models.Reading

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(readingID, 10)).
		SetResult(&reading).
		Get("/api/readings/{id}")
	if err != nil {
		return models.Reading{}, fmt.Errorf("get reading request: %w", err)
	}

	return reading, mapHTTPError(resp)
}

func (h *httpServerAdapter) RequestTwinUpdate(ctx context.Context, twinID int64, readingIDs []int64) (models.RequestReceipt, error) {
	return h.requestFold(ctx, "/api/twins/{id}/update-requests", twinID, readingIDs)
}

func (h *httpServerAdapter) RequestRecommendation(ctx context.Context, twinID int64, readingIDs []int64) (models.RequestReceipt, error) {
	return h.requestFold(ctx, "/api/recommendations/{id}/requests", twinID, readingIDs)
}

func (h *httpServerAdapter) requestFold(ctx context.Context, path string, twinID int64, readingIDs []int64) (models.RequestReceipt, error) {
	var receipt models.RequestReceipt

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(twinID, 10)).
		SetBody(models.ReadingIDsRequest{ReadingIDs: readingIDs}).
		SetResult(&receipt).
		Post(path)
	if err != nil {
		return models.RequestReceipt{}, fmt.Errorf("%s request: %w", path, err)
	}

	return receipt, mapHTTPError(resp)
}

func (h *httpServerAdapter) GetTwin(ctx context.Context, twinID int64) (models.Twin, error) {
	var twin models.Twin

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(twinID, 10)).
		SetResult(&twin).
		Get("/api/twins/{id}")
	if err != nil {
		return models.Twin{}, fmt.Errorf("get twin request: %w", err)
	}

	return twin, mapHTTPError(resp)
}

func (h *httpServerAdapter) GetRecommendation(ctx context.Context, twinID int64) (models.Recommendation, error) {
	var rec models.Recommendation

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(twinID, 10)).
		SetResult(&rec).
		Get("/api/recommendations/{id}")
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("get recommendation request: %w", err)
	}

	return rec, mapHTTPError(resp)
}

func (h *httpServerAdapter) AddToAggregate(ctx context.Context, key string, delta []byte) (models.Aggregate, error) {
	var agg models.Aggregate

	req, err := h.digestedRequest(ctx, models.AggregateDeltaRequest{Ciphertext: delta})
	if err != nil {
		return models.Aggregate{}, err
	}

	resp, err := req.
		SetPathParam("key", key).
		SetResult(&agg).
		Post("/api/aggregates/{key}/deltas")
	if err != nil {
		return models.Aggregate{}, fmt.Errorf("add to aggregate request: %w", err)
	}

	return agg, mapHTTPError(resp)
}

func (h *httpServerAdapter) RequestAggregateReveal(ctx context.Context, key string) (models.RequestReceipt, error) {
	var receipt models.RequestReceipt

	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		SetResult(&receipt).
		Post("/api/aggregates/{key}/reveal-requests")
	if err != nil {
		return models.RequestReceipt{}, fmt.Errorf("aggregate reveal request: %w", err)
	}

	return receipt, mapHTTPError(resp)
}

func (h *httpServerAdapter) AggregateKeys(ctx context.Context) ([]string, error) {
	var keys models.AggregateKeysResponse

	resp, err := h.authedRequest(ctx).SetResult(&keys).Get("/api/aggregates")
	if err != nil {
		return nil, fmt.Errorf("aggregate keys request: %w", err)
	}

	return keys.Keys, mapHTTPError(resp)
}

func (h *httpServerAdapter) FindKeyByHash(ctx context.Context, keyHash int64) (string, error) {
	var found models.KeyByHashResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("hash", strconv.FormatInt(keyHash, 10)).
		SetResult(&found).
		Get("/api/aggregates/by-hash/{hash}")
	if err != nil {
		return "", fmt.Errorf("find key by hash request: %w", err)
	}

	return found.Key, mapHTTPError(resp)
}

func (h *httpServerAdapter) Events(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error) {
	var page models.EventsResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("after", strconv.FormatInt(afterSeq, 10)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&page).
		Get("/api/events")
	if err != nil {
		return nil, fmt.Errorf("events request: %w", err)
	}

	return page.Events, mapHTTPError(resp)
}

func (h *httpServerAdapter) GetData(ctx context.Context, key string) ([]byte, error) {
	var entry models.DataEntry

	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		SetResult(&entry).
		Get("/api/data/{key}")
	if err != nil {
		return nil, fmt.Errorf("get data request: %w", err)
	}

	return entry.Value, mapHTTPError(resp)
}

func (h *httpServerAdapter) SetData(ctx context.Context, key string, value []byte) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		SetBody(models.DataEntry{Key: key, Value: value}).
		Put("/api/data/{key}")
	if err != nil {
		return fmt.Errorf("set data request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) AppendRecord(ctx context.Context, rec models.RecordAppend) error {
	resp, err := h.authedRequest(ctx).
		SetBody(rec).
		Post("/api/data/records")
	if err != nil {
		return fmt.Errorf("append record request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// digestedRequest marshals body up front so that its SHA-256 can travel in
// utils.BodyDigestHeader next to it.
func (h *httpServerAdapter) digestedRequest(ctx context.Context, body any) (*resty.Request, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request body: %w", err)
	}

	return h.authedRequest(ctx).
		SetHeader(utils.BodyDigestHeader, utils.SHA256Hex(raw)).
		SetBody(raw), nil
}
