package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/garrettladley/landing/internal/client/github"
	"github.com/garrettladley/landing/internal/version"
)

func upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			currentVersion := version.Get()

			client := github.NewClient()
			latest, err := client.LatestRelease(ctx, repo)
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if !version.IsNewer(currentVersion, latest.TagName) {
				fmt.Printf("landing is up to date (%s)\n", currentVersion)
				return nil
			}

			fmt.Printf("Updating landing %s → %s\n", currentVersion, latest.TagName)
			return goInstallUpgrade(ctx, latest.TagName)
		},
	}
}

func goInstallUpgrade(ctx context.Context, tag string) error {
	cmd := exec.CommandContext(ctx, "go", "install", "github.com/garrettladley/landing/cmd/landing@"+tag)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("upgrade failed: %w", err)
	}
	fmt.Println("Successfully updated!")
	return nil
}
