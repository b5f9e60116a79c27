package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/internal/validators"
)

type errorResponse struct {
	target error
	status int
	msg    string
}

// errorResponses is matched in order: service errors wrap store errors, so
// they come first.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrEmptyReadingList, http.StatusBadRequest, app.MsgEmptyReadingList},
	{service.ErrTooManyReadings, http.StatusBadRequest, app.MsgTooManyReadings},
	{service.ErrInvalidCiphertext, http.StatusBadRequest, app.MsgInvalidCiphertext},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrInvalidProof, http.StatusUnauthorized, app.MsgInvalidProof},
	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},
	{service.ErrUnknownAggregate, http.StatusNotFound, app.MsgUnknownAggregate},
	{service.ErrUnknownRequest, http.StatusNotFound, app.MsgUnknownRequest},
	{service.ErrConcurrentUpdate, http.StatusConflict, app.MsgConcurrentUpdate},
	{service.ErrTooManyAdditions, http.StatusUnprocessableEntity, app.MsgTooManyAdditions},

	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrKeyHashCollision, http.StatusConflict, app.MsgKeyHashCollision},
	{store.ErrReadingNotFound, http.StatusNotFound, app.MsgReadingNotFound},
	{store.ErrCiphertextNotFound, http.StatusNotFound, app.MsgCiphertextNotFound},
	{store.ErrAggregateNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrTwinNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrRecommendationNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrRequestNotFound, http.StatusNotFound, app.MsgUnknownRequest},

	{validators.ErrEmptyReadingIDs, http.StatusBadRequest, app.MsgEmptyReadingList},
	{validators.ErrEmptyCiphertext, http.StatusBadRequest, app.MsgInvalidCiphertext},
	{validators.ErrCiphertextTooLarge, http.StatusBadRequest, app.MsgInvalidCiphertext},
	{validators.ErrInvalidReadingID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrDuplicateReadingID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrEmptyKey, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrKeyTooLong, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrValueTooLarge, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrSameRecordAndIndex, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidRequestID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrEmptyProof, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrEmptyLogin, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrEmptyPassword, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status and message mapped from err. Client
// errors are logged at warn level, everything else as an error.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status, body := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}
	http.Error(w, body, status)
}

// writeBadRequest answers malformed input that never reached the service.
func writeBadRequest(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	if status := statusFromError(err); status == http.StatusBadRequest {
		writeError(w, log, err, msg)
		return
	}
	log.Warn().Err(err).Msg(msg)
	http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
}
