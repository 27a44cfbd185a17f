package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/garrettladley/landing/internal/version"
	"github.com/garrettladley/landing/internal/xerrors"
	"github.com/garrettladley/landing/internal/xhttp"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	deps []Pinger
}

func NewHealth(deps ...Pinger) *Health {
	return &Health{deps: deps}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HandleHealth handles GET /health requests.
func (h *Health) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for _, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			xerrors.WriteError(ctx, w, xerrors.ServiceUnavailable(
				xerrors.WithMessage("dependency unavailable"),
				xerrors.WithCause(err),
			))
			return
		}
	}

	xhttp.WriteOK(w, healthResponse{Status: "ok", Version: version.Get()})
}
