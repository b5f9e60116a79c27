package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

type foldRequestFunc func(ctx context.Context, owner, twinID int64, readingIDs []int64) (models.RequestReceipt, error)

func (h *Handler) requestTwinUpdate(w http.ResponseWriter, r *http.Request) {
	h.requestFold(w, r, h.services.TwinService.RequestTwinUpdate, "twin update")
}

func (h *Handler) requestRecommendation(w http.ResponseWriter, r *http.Request) {
	h.requestFold(w, r, h.services.RecommendationService.RequestRecommendation, "recommendation")
}

// requestFold decodes the reading IDs of a twin update or recommendation
// request and answers 202 with the receipt of the queued decryption.
func (h *Handler) requestFold(w http.ResponseWriter, r *http.Request, fold foldRequestFunc, what string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	twinID, err := positiveIDParam(r, "id")
	if err != nil {
		writeBadRequest(w, log, err, "invalid twin ID")
		return
	}

	var req models.ReadingIDsRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, log, err, "invalid JSON was passed")
		return
	}
	if err = h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, log, err, "invalid reading IDs")
		return
	}

	receipt, err := fold(ctx, userID, twinID, req.ReadingIDs)
	if err != nil {
		writeError(w, log, err, "error requesting "+what)
		return
	}

	log.Info().Str("kind", what).Int64("request_id", receipt.RequestID).Int64("twin_id", twinID).Msg("decryption requested")
	utils.WriteJSON(w, receipt, http.StatusAccepted)
}

func (h *Handler) getTwin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	twinID, err := positiveIDParam(r, "id")
	if err != nil {
		writeBadRequest(w, log, err, "invalid twin ID")
		return
	}

	twin, err := h.services.TwinService.GetTwin(r.Context(), twinID)
	if err != nil {
		writeError(w, log, err, "error getting twin")
		return
	}

	utils.WriteJSON(w, twin, http.StatusOK)
}

func (h *Handler) getRecommendation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	twinID, err := positiveIDParam(r, "id")
	if err != nil {
		writeBadRequest(w, log, err, "invalid twin ID")
		return
	}

	rec, err := h.services.RecommendationService.GetRecommendation(r.Context(), twinID)
	if err != nil {
		writeError(w, log, err, "error getting recommendation")
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}
