package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingRequests(t *testing.T) {
	svcs := newFakeServices()
	svcs.OracleFeedService = &fakeOracleFeedService{
		pendingFn: func(_ context.Context, afterID int64, limit int) ([]models.PendingRequest, error) {
			assert.Equal(t, int64(2), afterID)
			assert.Equal(t, 20, limit)
			return []models.PendingRequest{{ID: 3, Kind: models.KindAggregate, Handles: []models.Handle{"h"}}}, nil
		},
	}

	rec := serve(t, svcs, http.MethodGet, "/api/oracle/requests?after=2&limit=20", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var page models.PendingRequestsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Requests, 1)
	assert.Equal(t, models.KindAggregate, page.Requests[0].Kind)

	rec = serve(t, svcs, http.MethodGet, "/api/oracle/requests?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, svcs, http.MethodGet, "/api/oracle/requests?after=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCiphertext(t *testing.T) {
	svcs := newFakeServices()
	svcs.OracleFeedService = &fakeOracleFeedService{
		ciphertextFn: func(_ context.Context, handle models.Handle) ([]byte, error) {
			if handle == "abc" {
				return []byte{9, 9}, nil
			}
			return nil, store.ErrCiphertextNotFound
		},
	}

	rec := serve(t, svcs, http.MethodGet, "/api/ciphertexts/abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ct models.CiphertextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ct))
	assert.Equal(t, []byte{9, 9}, ct.Ciphertext)

	rec = serve(t, svcs, http.MethodGet, "/api/ciphertexts/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgCiphertextNotFound, bodyOf(rec))
}

func TestCallbacks(t *testing.T) {
	const body = `{"request_id":7,"cleartexts":"WyIxIl0=","proof":"cHJvb2Y="}`

	tests := []struct {
		name       string
		path       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "twin applied", path: "/api/callbacks/twin", body: body, wantStatus: http.StatusOK},
		{name: "recommendation applied", path: "/api/callbacks/recommendation", body: body, wantStatus: http.StatusOK},
		{name: "aggregate applied", path: "/api/callbacks/aggregate", body: body, wantStatus: http.StatusOK},
		{name: "replayed", path: "/api/callbacks/twin", body: body, serviceErr: service.ErrUnknownRequest, wantStatus: http.StatusNotFound, wantBody: app.MsgUnknownRequest},
		{name: "bad proof", path: "/api/callbacks/aggregate", body: body, serviceErr: service.ErrInvalidProof, wantStatus: http.StatusUnauthorized, wantBody: app.MsgInvalidProof},
		{name: "no proof", path: "/api/callbacks/recommendation", body: `{"request_id":7}`, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "no request id", path: "/api/callbacks/twin", body: `{"proof":"cA=="}`, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := func(cb models.DecryptionCallback) {
				assert.Equal(t, int64(7), cb.RequestID)
				assert.Equal(t, []byte("proof"), cb.Proof)
				assert.Equal(t, []byte(`["1"]`), cb.Cleartexts)
			}

			svcs := newFakeServices()
			svcs.CallbackService = &fakeCallbackService{
				twinFn: func(_ context.Context, cb models.DecryptionCallback) (models.Twin, error) {
					check(cb)
					return models.Twin{ID: 5}, tt.serviceErr
				},
				recommendationFn: func(_ context.Context, cb models.DecryptionCallback) (models.Recommendation, error) {
					check(cb)
					return models.Recommendation{ID: 5}, tt.serviceErr
				},
				aggregateFn: func(_ context.Context, cb models.DecryptionCallback) (models.Event, error) {
					check(cb)
					return models.Event{Name: models.EventPlainAggregateResult, Value: 1}, tt.serviceErr
				},
			}

			rec := serve(t, svcs, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, bodyOf(rec))
			}
		})
	}
}
