package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/internal/validators"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addToAggregate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if err := h.validator.Validate(ctx, models.DataEntry{Key: key}, validators.FieldKey); err != nil {
		writeBadRequest(w, log, err, "invalid aggregate key")
		return
	}

	var req models.AggregateDeltaRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, log, err, "invalid JSON was passed")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, log, err, "invalid aggregate delta")
		return
	}

	agg, err := h.services.AggregateService.AddToAggregate(ctx, userID, key, req.Ciphertext)
	if err != nil {
		writeError(w, log, err, "error adding to aggregate")
		return
	}

	log.Debug().Str("key", key).Int("additions", agg.Additions).Msg("aggregate updated")
	utils.WriteJSON(w, agg, http.StatusOK)
}

func (h *Handler) requestAggregateReveal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if err := h.validator.Validate(ctx, models.DataEntry{Key: key}, validators.FieldKey); err != nil {
		writeBadRequest(w, log, err, "invalid aggregate key")
		return
	}

	receipt, err := h.services.AggregateService.RequestAggregateReveal(ctx, userID, key)
	if err != nil {
		writeError(w, log, err, "error requesting aggregate reveal")
		return
	}

	log.Info().Str("key", key).Int64("request_id", receipt.RequestID).Msg("aggregate reveal requested")
	utils.WriteJSON(w, receipt, http.StatusAccepted)
}

func (h *Handler) aggregateKeys(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	keys, err := h.services.AggregateService.Keys(r.Context())
	if err != nil {
		writeError(w, log, err, "error listing aggregate keys")
		return
	}
	if keys == nil {
		keys = []string{}
	}

	utils.WriteJSON(w, models.AggregateKeysResponse{Keys: keys, Length: len(keys)}, http.StatusOK)
}

func (h *Handler) findKeyByHash(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	keyHash, err := int64Param(r, "hash")
	if err != nil {
		writeBadRequest(w, log, err, "invalid key hash")
		return
	}

	key, err := h.services.AggregateService.FindKeyByHash(r.Context(), keyHash)
	if err != nil {
		writeError(w, log, err, "error finding aggregate key")
		return
	}

	utils.WriteJSON(w, models.KeyByHashResponse{KeyHash: keyHash, Key: key}, http.StatusOK)
}
