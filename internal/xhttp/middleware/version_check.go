package middleware

import (
	"log/slog"
	"net/http"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/landing/internal/version"
	"github.com/garrettladley/landing/internal/xhttp"
	"github.com/garrettladley/landing/internal/xslog"
)

const errorCodeIncompatibleVersion = "incompatible_version"

// VersionCheck rejects clients whose X-Client-Version has a different major
// version than the server with 426 Upgrade Required. Requests without the
// header, such as browser form posts, pass through.
func VersionCheck(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientVersion := r.Header.Get(version.Header)
			if clientVersion == "" {
				next.ServeHTTP(w, r)
				return
			}

			if verr := version.CheckCompatibility(clientVersion); verr != nil {
				logger.WarnContext(
					r.Context(),
					"client version incompatible",
					xslog.ClientVersion(verr.ClientVersion),
					xslog.MinVersion(verr.MinVersion),
					xslog.RequestPath(r),
				)

				xhttp.SetHeaderContentTypeApplicationJSON(w)
				w.WriteHeader(http.StatusUpgradeRequired)

				if err := go_json.NewEncoder(w).Encode(map[string]any{
					"error":       errorCodeIncompatibleVersion,
					"message":     verr.Error(),
					"min_version": verr.MinVersion,
				}); err != nil {
					logger.ErrorContext(r.Context(), "failed to encode version response",
						xslog.Error(err),
						xslog.RequestPath(r),
					)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
