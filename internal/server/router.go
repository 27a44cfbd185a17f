package server

import (
	"log/slog"
	"net/http"

	"github.com/garrettladley/landing/internal/server/handler"
	servermw "github.com/garrettladley/landing/internal/server/middleware"
	"github.com/garrettladley/landing/internal/service/lead"
	"github.com/garrettladley/landing/internal/storage"
	"github.com/garrettladley/landing/internal/xhttp/middleware"
)

type Deps struct {
	Leads   lead.Service
	Limiter storage.RateLimiter
	// Pingers are checked by GET /health.
	Pingers []handler.Pinger
}

// NewRouter wires the public routes and the shared middleware chain.
func NewRouter(logger *slog.Logger, deps Deps) http.Handler {
	subscribeHandler := handler.NewSubscribe(deps.Leads)
	healthHandler := handler.NewHealth(deps.Pingers...)

	mux := http.NewServeMux()

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /api/subscribe", subscribeHandler.HandleSubscribe)
	apiMux.HandleFunc("/api/subscribe", subscribeHandler.HandleMethodNotAllowed)
	apiWrapped := middleware.Chain(apiMux,
		middleware.VersionCheck(logger),
		servermw.RateLimit(deps.Limiter),
	)
	mux.Handle("/api/", apiWrapped)

	mux.HandleFunc("GET /health", healthHandler.HandleHealth)

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID(),
		middleware.ClientSessionID,
		middleware.Logger(logger),
		middleware.Logging("/health"),
		middleware.ShutdownContext,
		middleware.SecurityHeaders,
	)
}
