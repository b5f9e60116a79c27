package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch}

// CheckHTTPMethod is the router's MethodNotAllowed handler. A path served
// under other methods answers 404 like an unknown path. The methods the
// path does serve go to the debug log only.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routeMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		logger.FromRequest(r).Debug().
			Str("func", "CheckHTTPMethod").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("allowed", strings.Join(allowed, ",")).
			Msg("method not served on route")

		http.Error(w, app.MsgNotFound, http.StatusNotFound)
	}
}
