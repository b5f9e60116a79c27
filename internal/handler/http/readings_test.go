package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readingBody(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(models.ReadingCiphertexts{
		Timestamp: []byte{1}, Temperature: []byte{2}, Humidity: []byte{3},
		CO2: []byte{4}, Light: []byte{5}, SoilMoisture: []byte{6},
	})
	require.NoError(t, err)
	return string(raw)
}

func TestSubmitReading(t *testing.T) {
	svcs := newFakeServices()
	svcs.ReadingService = &fakeReadingService{
		submitFn: func(_ context.Context, owner int64, cts models.ReadingCiphertexts) (models.Reading, error) {
			assert.Equal(t, int64(1), owner)
			assert.Equal(t, []byte{6}, cts.SoilMoisture)
			return models.Reading{ID: 10, Owner: owner, SoilMoisture: "h6"}, nil
		},
	}

	rec := serve(t, svcs, http.MethodPost, "/api/readings", readingBody(t))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Reading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, models.Handle("h6"), got.SoilMoisture)
}

func TestSubmitReading_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "missing ciphertext", body: `{"timestamp":"AQ=="}`, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidCiphertext},
		{name: "empty body", wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "malformed ciphertext", body: readingBody(t), serviceErr: service.ErrInvalidCiphertext, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidCiphertext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newFakeServices()
			svcs.ReadingService = &fakeReadingService{
				submitFn: func(context.Context, int64, models.ReadingCiphertexts) (models.Reading, error) {
					return models.Reading{}, tt.serviceErr
				},
			}

			rec := serve(t, svcs, http.MethodPost, "/api/readings", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, bodyOf(rec))
		})
	}
}

func TestGetReading(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "found", path: "/api/readings/4", wantStatus: http.StatusOK},
		{name: "not a number", path: "/api/readings/abc", wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "not positive", path: "/api/readings/0", wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "missing", path: "/api/readings/4", serviceErr: store.ErrReadingNotFound, wantStatus: http.StatusNotFound, wantBody: app.MsgReadingNotFound},
		{name: "other owner", path: "/api/readings/4", serviceErr: service.ErrAccessDenied, wantStatus: http.StatusForbidden, wantBody: app.MsgAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newFakeServices()
			svcs.ReadingService = &fakeReadingService{
				getFn: func(_ context.Context, owner, id int64) (models.Reading, error) {
					assert.Equal(t, int64(4), id)
					return models.Reading{ID: id, Owner: owner}, tt.serviceErr
				},
			}

			rec := serve(t, svcs, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, bodyOf(rec))
			}
		})
	}
}

func TestSubmitReading_NoUserInContext(t *testing.T) {
	h := NewHandler(newFakeServices(), logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/readings", nil)
	rec := httptest.NewRecorder()
	h.submitReading(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgNoUserIDProvided, bodyOf(rec))
}

func TestRequestTwinUpdate(t *testing.T) {
	svcs := newFakeServices()
	svcs.TwinService = &fakeTwinService{
		requestFn: func(_ context.Context, owner, twinID int64, ids []int64) (models.RequestReceipt, error) {
			assert.Equal(t, int64(1), owner)
			assert.Equal(t, int64(5), twinID)
			assert.Equal(t, []int64{1, 2, 3}, ids)
			return models.RequestReceipt{RequestID: 9, EntityID: twinID, Tag: utils.RequestTag(models.KindTwinUpdate)}, nil
		},
	}

	rec := serve(t, svcs, http.MethodPost, "/api/twins/5/update-requests", `{"reading_ids":[1,2,3]}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	var receipt models.RequestReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, int64(9), receipt.RequestID)
	assert.Equal(t, int64(5), receipt.EntityID)
}

func TestRequestFold_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "empty list", path: "/api/twins/5/update-requests", body: `{"reading_ids":[]}`, wantStatus: http.StatusBadRequest, wantBody: app.MsgEmptyReadingList},
		{name: "duplicate id", path: "/api/recommendations/5/requests", body: `{"reading_ids":[2,2]}`, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "bad twin id", path: "/api/twins/x/update-requests", body: `{"reading_ids":[1]}`, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "foreign reading", path: "/api/twins/5/update-requests", body: `{"reading_ids":[1]}`, serviceErr: service.ErrAccessDenied, wantStatus: http.StatusForbidden, wantBody: app.MsgAccessDenied},
		{name: "too many readings", path: "/api/recommendations/5/requests", body: `{"reading_ids":[1]}`, serviceErr: service.ErrTooManyReadings, wantStatus: http.StatusBadRequest, wantBody: app.MsgTooManyReadings},
		{name: "unknown reading", path: "/api/recommendations/5/requests", body: `{"reading_ids":[1]}`, serviceErr: store.ErrReadingNotFound, wantStatus: http.StatusNotFound, wantBody: app.MsgReadingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fold := func(context.Context, int64, int64, []int64) (models.RequestReceipt, error) {
				return models.RequestReceipt{}, tt.serviceErr
			}
			svcs := newFakeServices()
			svcs.TwinService = &fakeTwinService{requestFn: fold}
			svcs.RecommendationService = &fakeRecommendationService{requestFn: fold}

			rec := serve(t, svcs, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, bodyOf(rec))
		})
	}
}

func TestGetTwinAndRecommendation(t *testing.T) {
	svcs := newFakeServices()
	svcs.TwinService = &fakeTwinService{
		getFn: func(_ context.Context, id int64) (models.Twin, error) {
			return models.Twin{ID: id, Decrypted: models.DecryptedTwin{Summary: "Healthy,85% moisture", HealthScore: 85, Revealed: true}}, nil
		},
	}
	svcs.RecommendationService = &fakeRecommendationService{
		getFn: func(_ context.Context, id int64) (models.Recommendation, error) {
			return models.Recommendation{ID: id, Decrypted: models.DecryptedRecommendation{Watering: "Keep watering schedule, soil moisture 50%", Revealed: true}}, nil
		},
	}

	rec := serve(t, svcs, http.MethodGet, "/api/twins/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var twin models.Twin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &twin))
	assert.Equal(t, int64(85), twin.Decrypted.HealthScore)

	rec = serve(t, svcs, http.MethodGet, "/api/recommendations/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var recommendation models.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recommendation))
	assert.True(t, recommendation.Decrypted.Revealed)
	assert.Equal(t, int64(5), recommendation.ID)
}
