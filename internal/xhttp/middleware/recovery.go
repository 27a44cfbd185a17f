package middleware

import (
	"net/http"

	"github.com/garrettladley/landing/internal/xerrors"
	"github.com/garrettladley/landing/internal/xslog"
)

// Recovery turns a handler panic into a JSON 500.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err == nil {
				return
			}
			if err == http.ErrAbortHandler {
				panic(err)
			}
			xslog.FromContext(r.Context()).ErrorContext(
				r.Context(),
				"panic recovered",
				xslog.RequestGroup(r),
				xslog.ErrorGroupWithStack(err),
			)
			xerrors.WriteError(r.Context(), w, xerrors.Internal(xerrors.WithMessage("internal error")))
		}()
		next.ServeHTTP(w, r)
	})
}
