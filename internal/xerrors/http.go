package xerrors

import (
	"context"
	"net/http"
	"strings"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/landing/internal/xhttp"
	"github.com/garrettladley/landing/internal/xslog"
)

type errorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// WriteError renders err as a JSON error response. Errors that are not an
// *Error become a 500 whose cause is logged but never sent.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	appErr := As(err)
	if appErr == nil {
		appErr = Internal(WithCause(err))
	}

	logError(ctx, appErr)

	resp := errorResponse{Message: appErr.Message}
	if appErr.Validation != nil {
		resp.Fields = appErr.Validation.Fields
	}
	body, merr := go_json.Marshal(resp)
	if merr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	xhttp.SetHeaderContentTypeApplicationJSON(w)
	if rl := appErr.RateLimit; rl != nil {
		if rl.RetryAfter > 0 {
			xhttp.SetHeaderRetryAfter(w, rl.RetryAfter)
		}
		if rl.Reason != "" {
			w.Header().Set(xhttp.XRateLimitReason, rl.Reason)
		}
	}
	if len(appErr.Allow) > 0 {
		w.Header().Set(xhttp.Allow, strings.Join(appErr.Allow, ", "))
	}

	w.WriteHeader(appErr.StatusCode)
	_, _ = w.Write(append(body, '\n'))
}

func logError(ctx context.Context, err *Error) {
	attrs := []any{
		xslog.HTTPStatus(err.StatusCode),
		xslog.Message(err.Message),
	}
	if err.Cause != nil {
		attrs = append(attrs, xslog.Error(err.Cause))
	}
	if rl := err.RateLimit; rl != nil {
		attrs = append(attrs, xslog.RetryAfter(rl.RetryAfter), xslog.Reason(rl.Reason))
	}
	if err.Validation != nil {
		attrs = append(attrs, xslog.Fields(err.Validation.Fields))
	}

	logger := xslog.FromContext(ctx)
	switch {
	case err.StatusCode >= http.StatusInternalServerError:
		logger.ErrorContext(ctx, "server error", attrs...)
	case err.StatusCode == http.StatusTooManyRequests, err.StatusCode == http.StatusMethodNotAllowed:
		logger.InfoContext(ctx, "request rejected", attrs...)
	default:
		logger.WarnContext(ctx, "client error", attrs...)
	}
}
