package http

import (
	"net/http"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

func (h *Handler) submitReading(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var cts models.ReadingCiphertexts
	if err := utils.DecodeJSON(r, &cts); err != nil {
		writeBadRequest(w, log, err, "invalid JSON was passed")
		return
	}
	if err := h.validator.Validate(ctx, cts); err != nil {
		writeBadRequest(w, log, err, "invalid reading ciphertexts")
		return
	}

	reading, err := h.services.ReadingService.SubmitReading(ctx, userID, cts)
	if err != nil {
		writeError(w, log, err, "error submitting reading")
		return
	}

	log.Debug().Int64("reading_id", reading.ID).Msg("reading submitted")
	utils.WriteJSON(w, reading, http.StatusCreated)
}

func (h *Handler) getReading(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	readingID, err := positiveIDParam(r, "id")
	if err != nil {
		writeBadRequest(w, log, err, "invalid reading ID")
		return
	}

	reading, err := h.services.ReadingService.GetReading(r.Context(), userID, readingID)
	if err != nil {
		writeError(w, log, err, "error getting reading")
		return
	}

	utils.WriteJSON(w, reading, http.StatusOK)
}
