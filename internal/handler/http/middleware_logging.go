package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		resp := lw.data()

		event := log.Info()
		switch {
		case resp.status >= http.StatusInternalServerError:
			event = log.Error()
		case resp.status >= http.StatusBadRequest:
			event = log.Warn()
		}
		if resp.errText != "" {
			event = event.Str("error", resp.errText)
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", resp.status).
			Dur("duration", time.Since(start)).
			Int("size", resp.size).
			Send()
	})
}
