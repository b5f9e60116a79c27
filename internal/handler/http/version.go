package http

import (
	"net/http"
)

const (
	buildDateHeader   = "X-Build-Date"
	buildCommitHeader = "X-Build-Commit"
)

// getServerVersion answers the contract host version as plain text. The
// build date and commit of the binary ride along in headers.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	w.Header().Set(buildDateHeader, info.BuildDate())
	w.Header().Set(buildCommitHeader, info.BuildCommit())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
