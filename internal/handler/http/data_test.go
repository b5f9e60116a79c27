package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetData(t *testing.T) {
	svcs := newFakeServices()
	svcs.DataService = &fakeDataService{
		getFn: func(_ context.Context, owner int64, key string) ([]byte, error) {
			assert.Equal(t, int64(1), owner)
			if key == "sensor_keys" {
				return []byte(`["sensor:1"]`), nil
			}
			return nil, nil
		},
	}

	rec := serve(t, svcs, http.MethodGet, "/api/data/sensor_keys", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var entry models.DataEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, `["sensor:1"]`, string(entry.Value))

	rec = serve(t, svcs, http.MethodGet, "/api/data/unset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key":"unset","value":""}`, rec.Body.String())
}

func TestSetData(t *testing.T) {
	var stored []byte
	svcs := newFakeServices()
	svcs.DataService = &fakeDataService{
		setFn: func(_ context.Context, _ int64, key string, value []byte) error {
			assert.Equal(t, "note", key)
			stored = value
			return nil
		},
	}

	// the key from the path wins over the body
	rec := serve(t, svcs, http.MethodPut, "/api/data/note", `{"key":"other","value":"aGk="}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []byte("hi"), stored)
}

func TestSetData_ServiceFailure(t *testing.T) {
	svcs := newFakeServices()
	svcs.DataService = &fakeDataService{
		setFn: func(context.Context, int64, string, []byte) error {
			return errors.New("ledger unavailable")
		},
	}

	rec := serve(t, svcs, http.MethodPut, "/api/data/note", `{"value":"aGk="}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, bodyOf(rec))
}

func TestAppendRecord(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCalled bool
	}{
		{name: "appended", body: `{"index_key":"sensor_keys","record_key":"sensor:1","value":"e30="}`, wantStatus: http.StatusNoContent, wantCalled: true},
		{name: "record equals index", body: `{"index_key":"k","record_key":"k","value":"e30="}`, wantStatus: http.StatusBadRequest},
		{name: "missing index", body: `{"record_key":"sensor:1"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svcs := newFakeServices()
			svcs.DataService = &fakeDataService{
				appendFn: func(_ context.Context, _ int64, rec models.RecordAppend) error {
					called = true
					assert.Equal(t, "sensor:1", rec.RecordKey)
					return nil
				},
			}

			rec := serve(t, svcs, http.MethodPost, "/api/data/records", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestListEvents(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantAfter  int64
		wantLimit  int
		wantStatus int
	}{
		{name: "defaults", query: "", wantAfter: 0, wantLimit: defaultPageLimit, wantStatus: http.StatusOK},
		{name: "cursor", query: "?after=12&limit=5", wantAfter: 12, wantLimit: 5, wantStatus: http.StatusOK},
		{name: "capped", query: "?limit=100000", wantLimit: maxPageLimit, wantStatus: http.StatusOK},
		{name: "bad limit", query: "?limit=-1", wantStatus: http.StatusBadRequest},
		{name: "bad cursor", query: "?after=x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newFakeServices()
			svcs.EventService = &fakeEventService{
				listFn: func(_ context.Context, after int64, limit int) ([]models.Event, error) {
					assert.Equal(t, tt.wantAfter, after)
					assert.Equal(t, tt.wantLimit, limit)
					return []models.Event{{Seq: after + 1, Name: models.EventTwinDecrypted, EntityID: 5}}, nil
				},
			}

			rec := serve(t, svcs, http.MethodGet, "/api/events"+tt.query, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var page models.EventsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
			assert.Equal(t, 1, page.Length)
			assert.Equal(t, tt.wantAfter+1, page.Events[0].Seq)
		})
	}
}
