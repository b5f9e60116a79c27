package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/go-chi/chi/v5"
)

var errInvalidParam = errors.New("invalid path or query parameter")

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// requireUserID returns the caller stored by the auth middleware or answers
// 401 when the route was reached without one.
func requireUserID(w http.ResponseWriter, r *http.Request, log *logger.Logger) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func int64Param(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidParam, name, raw)
	}
	return v, nil
}

func positiveIDParam(r *http.Request, name string) (int64, error) {
	v, err := int64Param(r, name)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", errInvalidParam, name)
	}
	return v, nil
}

// pageParams reads the "after" cursor and "limit" query parameters.
func pageParams(r *http.Request) (after int64, limit int, err error) {
	q := r.URL.Query()

	if raw := q.Get("after"); raw != "" {
		if after, err = strconv.ParseInt(raw, 10, 64); err != nil || after < 0 {
			return 0, 0, fmt.Errorf("%w: after=%q", errInvalidParam, raw)
		}
	}

	limit = defaultPageLimit
	if raw := q.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit <= 0 {
			return 0, 0, fmt.Errorf("%w: limit=%q", errInvalidParam, raw)
		}
	}
	limit = min(limit, maxPageLimit)

	return after, limit, nil
}
