package xhttp

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

const (
	XForwardedFor    = "X-Forwarded-For"
	XContentTypeOpts = "X-Content-Type-Options"
	XFrameOpts       = "X-Frame-Options"
	CSP              = "Content-Security-Policy"
	CacheControl     = "Cache-Control"
	Connection       = "Connection"
	ReferrerPolicy   = "Referrer-Policy"
	XRateLimitReason = "X-RateLimit-Reason"
	XRequestID       = "X-Request-ID"
	XSessionID       = "X-Session-ID"
)

const (
	Allow       = "Allow"
	ContentType = "Content-Type"
	Accept      = "Accept"
	UserAgent   = "User-Agent"
	RetryAfter  = "Retry-After"
)

const ApplicationJSON = "application/json"

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	w.Header().Set(ContentType, ApplicationJSON)
}

func SetHeaderRetryAfter(w http.ResponseWriter, retryAfter time.Duration) {
	// round up so a sub-second wait is never advertised as 0
	w.Header().Set(RetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
}

func SetRequestHeaderSessionID(r *http.Request, sessionID string) {
	r.Header.Set(XSessionID, sessionID)
}

func GetRequestHeaderSessionID(r *http.Request) string {
	return r.Header.Get(XSessionID)
}
