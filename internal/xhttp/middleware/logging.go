package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/garrettladley/landing/internal/xslog"
)

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Logging writes one record per request. Successful requests to quietPaths
// are logged at debug so health checks do not flood the log.
func Logging(quietPaths ...string) func(http.Handler) http.Handler {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			level := slog.LevelInfo
			if _, ok := quiet[r.URL.Path]; ok && wrapped.status < http.StatusBadRequest {
				level = slog.LevelDebug
			}
			xslog.FromContext(r.Context()).Log(
				r.Context(),
				level,
				"http request",
				xslog.RequestGroup(r),
				xslog.ResponseGroup(wrapped.status, wrapped.bytes, time.Since(start)),
			)
		})
	}
}
