package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/landing/internal/client/github"
)

func checkReleaseCmd(ctx context.Context, checker ReleaseChecker, repo github.Repo) tea.Cmd {
	if checker == nil {
		return nil
	}
	return func() tea.Msg {
		release, err := checker.LatestRelease(ctx, repo)
		if err != nil {
			return ReleaseMsg{Err: err}
		}
		return ReleaseMsg{Tag: release.TagName}
	}
}
