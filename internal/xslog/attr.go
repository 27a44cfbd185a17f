package xslog

import (
	"log/slog"
	"maps"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"github.com/garrettladley/landing/internal/version"
	"github.com/garrettladley/landing/internal/xhttp"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func ClientVersion(clientVersion string) slog.Attr {
	const clientVersionKey = "client_version"
	return slog.String(clientVersionKey, clientVersion)
}

func MinVersion(minVersion string) slog.Attr {
	const minVersionKey = "min_version"
	return slog.String(minVersionKey, minVersion)
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Addr(addr string) slog.Attr {
	const addrKey = "addr"
	return slog.String(addrKey, addr)
}

func Driver(name string) slog.Attr {
	const driverKey = "driver"
	return slog.String(driverKey, name)
}

func LeadKind(kind string) slog.Attr {
	const leadKindKey = "lead_kind"
	return slog.String(leadKindKey, kind)
}

func Label(label string) slog.Attr {
	const labelKey = "label"
	return slog.String(labelKey, label)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Created(created bool) slog.Attr {
	const createdKey = "created"
	return slog.Bool(createdKey, created)
}

// Fields logs the names of the invalid fields, never their values.
func Fields(fields map[string]string) slog.Attr {
	const fieldsKey = "fields"
	return slog.Any(fieldsKey, slices.Sorted(maps.Keys(fields)))
}

func RetryAfter(d time.Duration) slog.Attr {
	const retryAfterKey = "retry_after"
	return slog.Duration(retryAfterKey, d)
}

func Reason(reason string) slog.Attr {
	const reasonKey = "reason"
	return slog.String(reasonKey, reason)
}

func Message(msg string) slog.Attr {
	const messageKey = "message"
	return slog.String(messageKey, msg)
}
