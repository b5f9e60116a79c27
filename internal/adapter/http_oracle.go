package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

var callbackPaths = map[models.RequestKind]string{
	models.KindTwinUpdate:     "/api/callbacks/twin",
	models.KindRecommendation: "/api/callbacks/recommendation",
	models.KindAggregate:      "/api/callbacks/aggregate",
}

type httpOracleAdapter struct {
	client *utils.HTTPClient
}

// NewHTTPOracleAdapter returns an [OracleAdapter] for the contract host at
// cfg.ServerURL. The oracle endpoints need no session token: the feed only
// exposes handles and ciphertexts, and callbacks carry their own proof.
func NewHTTPOracleAdapter(cfg config.Adapter) (OracleAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpOracleAdapter{client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout)}, nil
}

func (o *httpOracleAdapter) PendingRequests(ctx context.Context, afterID int64, limit int) ([]models.PendingRequest, error) {
	var page models.PendingRequestsResponse

	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParam("after", strconv.FormatInt(afterID, 10)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&page).
		Get("/api/oracle/requests")
	if err != nil {
		return nil, fmt.Errorf("pending requests request: %w", err)
	}

	return page.Requests, mapHTTPError(resp)
}

func (o *httpOracleAdapter) Ciphertext(ctx context.Context, handle models.Handle) ([]byte, error) {
	var ct models.CiphertextResponse

	resp, err := o.client.R().
		SetContext(ctx).
		SetPathParam("handle", handle.String()).
		SetResult(&ct).
		Get("/api/ciphertexts/{handle}")
	if err != nil {
		return nil, fmt.Errorf("ciphertext request: %w", err)
	}

	return ct.Ciphertext, mapHTTPError(resp)
}

func (o *httpOracleAdapter) Callback(ctx context.Context, kind models.RequestKind, cb models.DecryptionCallback) error {
	path, ok := callbackPaths[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRequestKind, kind)
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(cb).
		Post(path)
	if err != nil {
		return fmt.Errorf("callback request: %w", err)
	}

	return mapHTTPError(resp)
}
