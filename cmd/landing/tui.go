package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/landing/internal/client/github"
	"github.com/garrettladley/landing/internal/client/leads"
	"github.com/garrettladley/landing/internal/config"
	"github.com/garrettladley/landing/internal/content"
	"github.com/garrettladley/landing/internal/paths"
	"github.com/garrettladley/landing/internal/tui"
	"github.com/garrettladley/landing/internal/xslog"
)

const (
	flagContent = "content"
	flagServer  = "server"
	flagOffline = "offline"
)

func addTUIFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagContent, "", "YAML content file (env LANDING_CONTENT)")
	cmd.Flags().String(flagServer, "", "lead server URL (env SERVER_URL)")
	cmd.Flags().Bool(flagOffline, false, "disable subscribing and update checks")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if v, _ := cmd.Flags().GetString(flagContent); v != "" {
		cfg.ContentPath = v
	}
	if v, _ := cmd.Flags().GetString(flagServer); v != "" {
		cfg.ServerURL = v
	}
	offline, _ := cmd.Flags().GetBool(flagOffline)

	page, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}

	logPath, err := paths.Log()
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	ctx = xslog.WithLogger(ctx, xslog.NewLoggerFromEnv(logFile, xslog.FormatText))

	deps := tui.Deps{
		Content: page,
		Repo:    repo,
	}
	if !offline {
		client := leads.NewClient(cfg.ServerURL)
		deps.Subscriber = client
		ctx = xslog.WithAttrs(ctx, xslog.SessionID(client.SessionID()))
	}
	if !offline && cfg.CheckUpdates {
		deps.Releases = github.NewClient()
	}
	deps.Ctx = ctx
	deps.Logger = xslog.FromContext(ctx)
	deps.Logger.InfoContext(ctx, "starting", slog.String("server", cfg.ServerURL), slog.Bool("offline", offline))

	model := tui.New(deps)
	p := tea.NewProgram(&model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
