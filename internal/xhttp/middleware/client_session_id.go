package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/garrettladley/landing/internal/xcontext"
	"github.com/garrettladley/landing/internal/xhttp"
)

// ClientSessionID records the session header sent by the terminal client.
// Values that are not UUIDs are ignored so arbitrary input never reaches
// the logs.
func ClientSessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, err := uuid.Parse(xhttp.GetRequestHeaderSessionID(r)); err == nil {
			r = r.WithContext(xcontext.SetSessionID(r.Context(), id.String()))
		}
		next.ServeHTTP(w, r)
	})
}
