package http

import (
	"net/http"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	after, limit, err := pageParams(r)
	if err != nil {
		writeBadRequest(w, log, err, "invalid event page")
		return
	}

	events, err := h.services.EventService.List(r.Context(), after, limit)
	if err != nil {
		writeError(w, log, err, "error listing events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.WriteJSON(w, models.EventsResponse{Events: events, Length: len(events)}, http.StatusOK)
}
