package httpserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"health-companion/internal/logging"
)

// requestIDHeader is echoed back to clients for log correlation.
const requestIDHeader = "X-Request-ID"

// requestIDMiddleware assigns a UUID to each inbound request. Clients may
// supply their own; otherwise one is generated.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		r.Header.Set(requestIDHeader, id)
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// slogMiddleware logs each HTTP request with structured fields.
func slogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     200,
		}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		logging.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"request_id", r.Header.Get(requestIDHeader),
			"status_code", ww.statusCode,
			"bytes_written", ww.bytesWritten,
			"duration_ms", duration.Milliseconds(),
		)
	})
}

// responseWriterWrapper captures status code and bytes written.
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriterWrapper) Write(data []byte) (int, error) {
	n, err := w.ResponseWriter.Write(data)
	w.bytesWritten += n
	return n, err
}
