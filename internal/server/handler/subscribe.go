package handler

import (
	"errors"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/landing/internal/service/lead"
	"github.com/garrettladley/landing/internal/xcontext"
	"github.com/garrettladley/landing/internal/xerrors"
	"github.com/garrettladley/landing/internal/xhttp"
)

const maxSubscribeBody = 4 << 10

type Subscribe struct {
	service lead.Service
}

func NewSubscribe(service lead.Service) *Subscribe {
	return &Subscribe{service: service}
}

type okResponse struct {
	OK bool `json:"ok"`
}

// HandleSubscribe handles POST /api/subscribe requests.
// An empty body is treated as an empty form and fails validation.
func (h *Subscribe) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if xcontext.IsShutdownInProgress(ctx) {
		xerrors.WriteError(ctx, w, xerrors.ServiceUnavailable(xerrors.WithMessage("server shutting down")))
		return
	}

	var req lead.SubscribeRequest
	body := http.MaxBytesReader(w, r.Body, maxSubscribeBody)
	if err := go_json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(
			xerrors.WithMessage("invalid JSON body"),
			xerrors.WithCause(err),
		))
		return
	}

	if _, err := h.service.Subscribe(ctx, req); err != nil {
		if appErr := xerrors.As(err); appErr != nil {
			xerrors.WriteError(ctx, w, appErr)
			return
		}
		xerrors.WriteError(ctx, w, xerrors.Internal(
			xerrors.WithMessage("failed to save"),
			xerrors.WithCause(err),
		))
		return
	}

	xhttp.WriteOK(w, okResponse{OK: true})
}

// HandleMethodNotAllowed answers every other method on /api/subscribe.
func (h *Subscribe) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	xerrors.WriteError(r.Context(), w, xerrors.MethodNotAllowed(http.MethodPost))
}
