package tui

import (
	"context"
	"log/slog"

	"github.com/garrettladley/landing/internal/client/github"
	"github.com/garrettladley/landing/internal/content"
	"github.com/garrettladley/landing/internal/countup"
	"github.com/garrettladley/landing/internal/tui/page/landing"
)

// ReleaseChecker looks up the latest published release.
type ReleaseChecker interface {
	LatestRelease(ctx context.Context, repo github.Repo) (*github.Release, error)
}

type Deps struct {
	Ctx     context.Context
	Logger  *slog.Logger
	Content *content.Content
	// Subscriber is nil when no server is configured.
	Subscriber landing.Subscriber
	// Releases is nil when update checks are disabled.
	Releases ReleaseChecker
	Repo     github.Repo
	// CounterOptions are passed to every stat counter.
	CounterOptions []countup.CounterOption
}
