package middleware

import (
	"net/http"

	"github.com/garrettladley/landing/internal/xcontext"
	"github.com/garrettladley/landing/internal/xhttp"
)

// ShutdownContext marks requests that arrive once the server's base context
// is cancelled and asks the client not to reuse the connection.
func ShutdownContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Err() != nil {
			w.Header().Set(xhttp.Connection, "close")
			r = r.WithContext(xcontext.SetShutdownInProgress(r.Context(), true))
		}
		next.ServeHTTP(w, r)
	})
}
