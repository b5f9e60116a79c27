package http

import "net/http"

// maxCapturedBody bounds how much of an error response is kept for the
// request log. Error bodies are short app.Msg* texts.
const maxCapturedBody = 256

// responseData is what withLogging reports about a finished response.
type responseData struct {
	status int
	size   int
	// errText is the start of the body of a 4xx/5xx response.
	errText string
}

// responseWriter records the status and size of a response and keeps the
// first bytes of error bodies.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
	errBody     []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n

	if w.status >= http.StatusBadRequest && len(w.errBody) < maxCapturedBody {
		room := maxCapturedBody - len(w.errBody)
		w.errBody = append(w.errBody, b[:min(n, room)]...)
	}
	return n, err
}

func (w *responseWriter) data() responseData {
	status := w.status
	if !w.wroteHeader {
		status = http.StatusOK
	}
	return responseData{status: status, size: w.size, errText: string(trimNewline(w.errBody))}
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
