package middleware

import (
	"net/http"

	"github.com/garrettladley/landing/internal/xhttp"
)

// SecurityHeaders locks responses down for a JSON-only API: nothing may be
// framed, sniffed, cached or used as a document.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(xhttp.XContentTypeOpts, "nosniff")
		h.Set(xhttp.XFrameOpts, "DENY")
		h.Set(xhttp.CSP, "default-src 'none'; frame-ancestors 'none'")
		h.Set(xhttp.ReferrerPolicy, "no-referrer")
		h.Set(xhttp.CacheControl, "no-store")
		next.ServeHTTP(w, r)
	})
}
