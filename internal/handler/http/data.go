package http

import (
	"net/http"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/internal/validators"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	key := chi.URLParam(r, "key")
	if err := h.validator.Validate(ctx, models.DataEntry{Key: key}, validators.FieldKey); err != nil {
		writeBadRequest(w, log, err, "invalid data key")
		return
	}

	value, err := h.services.DataService.GetData(ctx, userID, key)
	if err != nil {
		writeError(w, log, err, "error getting data")
		return
	}
	if value == nil {
		value = []byte{}
	}

	utils.WriteJSON(w, models.DataEntry{Key: key, Value: value}, http.StatusOK)
}

func (h *Handler) setData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var entry models.DataEntry
	if err := utils.DecodeJSON(r, &entry); err != nil {
		writeBadRequest(w, log, err, "invalid JSON was passed")
		return
	}
	// the path is authoritative for the key
	entry.Key = chi.URLParam(r, "key")
	if err := h.validator.Validate(ctx, entry); err != nil {
		writeBadRequest(w, log, err, "invalid data entry")
		return
	}

	if err := h.services.DataService.SetData(ctx, userID, entry.Key, entry.Value); err != nil {
		writeError(w, log, err, "error setting data")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) appendRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var rec models.RecordAppend
	if err := utils.DecodeJSON(r, &rec); err != nil {
		writeBadRequest(w, log, err, "invalid JSON was passed")
		return
	}
	if err := h.validator.Validate(ctx, rec); err != nil {
		writeBadRequest(w, log, err, "invalid record")
		return
	}

	if err := h.services.DataService.AppendRecord(ctx, userID, rec); err != nil {
		writeError(w, log, err, "error appending record")
		return
	}

	log.Debug().Str("index_key", rec.IndexKey).Str("record_key", rec.RecordKey).Msg("record appended")
	w.WriteHeader(http.StatusNoContent)
}
