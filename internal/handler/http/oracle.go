package http

import (
	"net/http"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) pendingRequests(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	after, limit, err := pageParams(r)
	if err != nil {
		writeBadRequest(w, log, err, "invalid request page")
		return
	}

	requests, err := h.services.OracleFeedService.PendingRequests(r.Context(), after, limit)
	if err != nil {
		writeError(w, log, err, "error listing pending requests")
		return
	}
	if requests == nil {
		requests = []models.PendingRequest{}
	}

	utils.WriteJSON(w, models.PendingRequestsResponse{Requests: requests, Length: len(requests)}, http.StatusOK)
}

func (h *Handler) getCiphertext(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	handle := models.Handle(chi.URLParam(r, "handle"))
	if handle == "" {
		writeBadRequest(w, log, errInvalidParam, "empty handle")
		return
	}

	ct, err := h.services.OracleFeedService.Ciphertext(r.Context(), handle)
	if err != nil {
		writeError(w, log, err, "error getting ciphertext")
		return
	}

	utils.WriteJSON(w, models.CiphertextResponse{Handle: handle, Ciphertext: ct}, http.StatusOK)
}

func (h *Handler) twinCallback(w http.ResponseWriter, r *http.Request) {
	cb, ok := h.decodeCallback(w, r)
	if !ok {
		return
	}

	twin, err := h.services.CallbackService.HandleTwinCallback(r.Context(), cb)
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "twin callback rejected")
		return
	}

	utils.WriteJSON(w, twin, http.StatusOK)
}

func (h *Handler) recommendationCallback(w http.ResponseWriter, r *http.Request) {
	cb, ok := h.decodeCallback(w, r)
	if !ok {
		return
	}

	rec, err := h.services.CallbackService.HandleRecommendationCallback(r.Context(), cb)
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "recommendation callback rejected")
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) aggregateCallback(w http.ResponseWriter, r *http.Request) {
	cb, ok := h.decodeCallback(w, r)
	if !ok {
		return
	}

	event, err := h.services.CallbackService.HandleAggregateCallback(r.Context(), cb)
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "aggregate callback rejected")
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) decodeCallback(w http.ResponseWriter, r *http.Request) (models.DecryptionCallback, bool) {
	log := logger.FromRequest(r)

	var cb models.DecryptionCallback
	if err := utils.DecodeJSON(r, &cb); err != nil {
		writeBadRequest(w, log, err, "invalid JSON was passed")
		return models.DecryptionCallback{}, false
	}
	if err := h.validator.Validate(r.Context(), cb); err != nil {
		writeBadRequest(w, log, err, "invalid callback")
		return models.DecryptionCallback{}, false
	}

	log.Debug().Int64("request_id", cb.RequestID).Msg("callback received")
	return cb, true
}
