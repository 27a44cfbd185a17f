package middleware

import (
	"net/http"

	"github.com/garrettladley/landing/internal/storage"
	"github.com/garrettladley/landing/internal/xerrors"
	"github.com/garrettladley/landing/internal/xhttp"
	"github.com/garrettladley/landing/internal/xslog"
)

const reasonIPRateLimit = "ip_rate_limit"

// RateLimit applies IP-based rate limiting.
func RateLimit(limiter storage.RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := xhttp.GetRequestIP(r)

			result, err := limiter.Allow(ctx, ip)
			if err != nil {
				xerrors.WriteError(ctx, w, xerrors.ServiceUnavailable(
					xerrors.WithMessage("rate limit check failed"),
					xerrors.WithCause(err),
				))
				return
			}

			if !result.Allowed {
				xslog.FromContext(ctx).DebugContext(ctx, "rate limited", xslog.IP(ip))
				xerrors.WriteError(ctx, w, xerrors.TooManyRequests(
					xerrors.WithRetryAfter(result.RetryAfter),
					xerrors.WithReason(reasonIPRateLimit),
				))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
