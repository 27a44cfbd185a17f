package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/landing/internal/xslog"
)

// Serve runs srv on ln until ctx is done, then drains in-flight requests
// for up to drain. Requests still running after that have their context
// cancelled, which ShutdownContext records for handlers.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, drain time.Duration) error {
	logger := xslog.FromContext(ctx)

	baseCtx, cancelBase := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelBase()
	srv.BaseContext = func(net.Listener) context.Context { return baseCtx }

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(ctx, "starting server", xslog.Version(), xslog.Addr(ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(ctx, "shutting down server", xslog.Duration(drain))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drain)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			cancelBase()
			return srv.Close()
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.InfoContext(ctx, "server stopped")
	return nil
}
