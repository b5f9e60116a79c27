package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantStatus int
		wantUserID int64
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantUserID: 42},
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer old", parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newFakeServices()
			svcs.AuthService = &fakeAuthService{
				parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
					if tt.parseErr != nil {
						return models.Token{}, tt.parseErr
					}
					assert.Equal(t, "good", token)
					return models.Token{UserID: 42}, nil
				},
			}
			h := NewHandler(svcs, logger.Nop())

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, bodyOf(rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// body digest
// ─────────────────────────────────────────────

func TestBodyDigest(t *testing.T) {
	payload := []byte(`{"ciphertext":"AQID"}`)

	tests := []struct {
		name       string
		digest     string
		wantStatus int
		wantNext   bool
	}{
		{name: "matching", digest: utils.SHA256Hex(payload), wantStatus: http.StatusOK, wantNext: true},
		{name: "matching upper case", digest: strings.ToUpper(utils.SHA256Hex(payload)), wantStatus: http.StatusOK, wantNext: true},
		{name: "absent", wantStatus: http.StatusOK, wantNext: true},
		{name: "mismatch", digest: utils.SHA256Hex([]byte("tampered")), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(newFakeServices(), logger.Nop())

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, payload, body, "body must be restored")
			})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
			if tt.digest != "" {
				req.Header.Set(utils.BodyDigestHeader, tt.digest)
			}
			rec := httptest.NewRecorder()
			h.bodyDigest(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
		})
	}
}

func TestBodyDigest_RoutedUpload(t *testing.T) {
	body := readingBody(t)

	req := httptest.NewRequest(http.MethodPost, "/api/readings", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set(utils.BodyDigestHeader, utils.SHA256Hex([]byte("something else")))
	rec := httptest.NewRecorder()

	NewHandler(newFakeServices(), logger.Nop()).Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, bodyOf(rec))
}

// ─────────────────────────────────────────────
// trace ID and logging
// ─────────────────────────────────────────────

func TestWithTraceIDAndLogging(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(newFakeServices(), &logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/events?after=1", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.Equal(t, "trace-123", entry["trace_id"])
	assert.Equal(t, "/api/events?after=1", entry["uri"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(len("short and stout")), entry["size"])
}

func TestWithLogging_ErrorBody(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(newFakeServices(), &logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgReadingNotFound, http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/readings/9", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, app.MsgReadingNotFound, entry["error"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
}

func TestResponseWriter_CapsErrorBody(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	rw.WriteHeader(http.StatusInternalServerError)
	rw.Write(bytes.Repeat([]byte("x"), maxCapturedBody*2))

	resp := rw.data()
	assert.Equal(t, http.StatusInternalServerError, resp.status)
	assert.Equal(t, maxCapturedBody*2, resp.size)
	assert.Len(t, resp.errText, maxCapturedBody)
}

func TestResponseWriter_SuccessBodyNotKept(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	rw.Write([]byte(`{"id":1}`))

	resp := rw.data()
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Empty(t, resp.errText)
}

func TestWithTraceID_ReplacesUnsafeHeader(t *testing.T) {
	h := NewHandler(newFakeServices(), logger.Nop())

	for _, bad := range []string{"has space", "line\nbreak", strings.Repeat("a", maxTraceIDLen+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, bad)
		rec := httptest.NewRecorder()
		h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

		got := rec.Header().Get(traceIDHeader)
		assert.NotEqual(t, bad, got)
		assert.Len(t, got, 36)
	}
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := NewHandler(newFakeServices(), logger.Nop())

	rec := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, rec.Header().Get(traceIDHeader), 36)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	n, err := rw.Write([]byte("ok"))

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, rw.size)
}

// ─────────────────────────────────────────────
// gzip
// ─────────────────────────────────────────────

func TestWithGZip_CompressesResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.AggregateKeysResponse{Keys: []string{"water"}, Length: 1}, http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"keys":["water"],"length":1}`, string(plain))
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"reading_ids":[1]}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got models.ReadingIDsRequest
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, utils.DecodeJSON(r, &got))
	})

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, []int64{1}, got.ReadingIDs)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next must not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// error mapping
// ─────────────────────────────────────────────

func TestResponseFromError_PrefersServiceErrors(t *testing.T) {
	wrapped := errors.Join(service.ErrUnknownAggregate, errors.New("aggregate not found"))

	status, msg := responseFromError(wrapped)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, app.MsgUnknownAggregate, msg)
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("boom")))
}

func TestWithGZip_ImplicitStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("v1.2.3"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
