package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.NotNil(t, h.validator)
}

type routeCase struct {
	method string
	path   string
}

var expectedRoutes = []routeCase{
	{http.MethodPost, "/api/user/register"},
	{http.MethodPost, "/api/user/login"},
	{http.MethodGet, "/api/version"},
	{http.MethodPost, "/api/readings"},
	{http.MethodGet, "/api/readings/1"},
	{http.MethodPost, "/api/twins/1/update-requests"},
	{http.MethodGet, "/api/twins/1"},
	{http.MethodPost, "/api/recommendations/1/requests"},
	{http.MethodGet, "/api/recommendations/1"},
	{http.MethodPost, "/api/aggregates/water/deltas"},
	{http.MethodPost, "/api/aggregates/water/reveal-requests"},
	{http.MethodGet, "/api/aggregates"},
	{http.MethodGet, "/api/aggregates/by-hash/7"},
	{http.MethodGet, "/api/events"},
	{http.MethodGet, "/api/data/sensor_keys"},
	{http.MethodPut, "/api/data/sensor_keys"},
	{http.MethodPost, "/api/data/records"},
	{http.MethodGet, "/api/oracle/requests"},
	{http.MethodGet, "/api/ciphertexts/abc"},
	{http.MethodPost, "/api/callbacks/twin"},
	{http.MethodPost, "/api/callbacks/recommendation"},
	{http.MethodPost, "/api/callbacks/aggregate"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, newFakeServices(), tc.method, tc.path, "")

			// A registered route may answer 400 for the missing body, but
			// never 404 or 405.
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	rec := serve(t, newFakeServices(), http.MethodGet, "/api/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	rec := serve(t, newFakeServices(), http.MethodPost, "/api/version", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodOnParamRouteReturnsNotFound(t *testing.T) {
	for _, path := range []string{"/api/twins/1", "/api/readings/7", "/api/ciphertexts/abc"} {
		rec := serve(t, newFakeServices(), http.MethodDelete, path, "")

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, app.MsgNotFound, bodyOf(rec), path)
	}
}

func TestGetServerVersion_BuildHeaders(t *testing.T) {
	svcs := newFakeServices()
	svcs.AppInfoService = &fakeAppInfoService{version: "v1.4.0", date: "2026-10-01", commit: "9f3c2ab"}

	rec := serve(t, svcs, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.4.0", rec.Body.String())
	assert.Equal(t, "2026-10-01", rec.Header().Get(buildDateHeader))
	assert.Equal(t, "9f3c2ab", rec.Header().Get(buildCommitHeader))
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	router := NewHandler(newFakeServices(), logger.Nop()).Init()

	for _, path := range []string{"/api/twins/1", "/api/events", "/api/aggregates"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestInit_SetsTraceID(t *testing.T) {
	rec := serve(t, newFakeServices(), http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	assert.Equal(t, "test-version", rec.Body.String())
}
