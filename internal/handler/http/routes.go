package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// oracle feed: handles and ciphertexts only, callbacks carry a proof
	router.Group(func(r chi.Router) {
		r.Get("/api/oracle/requests", h.pendingRequests)
		r.Get("/api/ciphertexts/{handle}", h.getCiphertext)
		r.Post("/api/callbacks/twin", h.twinCallback)
		r.Post("/api/callbacks/recommendation", h.recommendationCallback)
		r.Post("/api/callbacks/aggregate", h.aggregateCallback)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.bodyDigest).Post("/api/readings", h.submitReading)
		r.Get("/api/readings/{id}", h.getReading)

		r.Post("/api/twins/{id}/update-requests", h.requestTwinUpdate)
		r.Get("/api/twins/{id}", h.getTwin)
		r.Post("/api/recommendations/{id}/requests", h.requestRecommendation)
		r.Get("/api/recommendations/{id}", h.getRecommendation)

		r.Get("/api/aggregates", h.aggregateKeys)
		r.Get("/api/aggregates/by-hash/{hash}", h.findKeyByHash)
		r.With(h.bodyDigest).Post("/api/aggregates/{key}/deltas", h.addToAggregate)
		r.Post("/api/aggregates/{key}/reveal-requests", h.requestAggregateReveal)

		r.Get("/api/events", h.listEvents)

		r.Post("/api/data/records", h.appendRecord)
		r.Get("/api/data/{key}", h.getData)
		r.Put("/api/data/{key}", h.setData)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
