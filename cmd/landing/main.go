package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/landing/internal/client/github"
	"github.com/garrettladley/landing/internal/version"
)

var repo = github.Repo{Owner: "garrettladley", Name: "landing"}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "landing",
		Short:   "An animated landing page in your terminal",
		Version: version.Get(),
	}
	addTUIFlags(rootCmd)
	rootCmd.RunE = runTUI

	rootCmd.AddCommand(upgradeCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
