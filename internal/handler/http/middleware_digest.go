package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
)

// maxDigestBody matches the decoder limit of utils.DecodeJSON.
const maxDigestBody = 64 << 20

// bodyDigest verifies the hex SHA-256 in utils.BodyDigestHeader against the
// request body. Requests without the header pass through unchanged.
func (h *Handler) bodyDigest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := strings.ToLower(strings.TrimSpace(r.Header.Get(utils.BodyDigestHeader)))
		if want == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r).With().Str("func", "*Handler.bodyDigest").Logger()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxDigestBody))
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if got := utils.SHA256Hex(body); got != want {
			log.Warn().Err(ErrBodyDigestMismatch).
				Str("digest from request", want).
				Str("digest of body", got).
				Send()
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
