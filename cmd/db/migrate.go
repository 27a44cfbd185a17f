package main

import (
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/garrettladley/landing/internal/migrations"
	"github.com/garrettladley/landing/internal/migrations/postgres"
	"github.com/garrettladley/landing/internal/server"
	"github.com/garrettladley/landing/internal/storage"
)

const (
	flagDriver = "driver"
	flagURL    = "url"
	flagPath   = "path"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			driver, _ := cmd.Flags().GetString(flagDriver)
			ctx := cmd.Context()

			var (
				applied int
				err     error
			)
			switch server.Driver(driver) {
			case server.DriverPostgres:
				url, _ := cmd.Flags().GetString(flagURL)
				if url == "" {
					return fmt.Errorf("--%s or DATABASE_URL is required for postgres", flagURL)
				}
				pool, perr := pgxpool.New(ctx, url)
				if perr != nil {
					return fmt.Errorf("connect: %w", perr)
				}
				defer pool.Close()
				applied, err = postgres.Apply(ctx, pool)
			case server.DriverSQLite:
				path, _ := cmd.Flags().GetString(flagPath)
				db, oerr := storage.OpenSQLite(path)
				if oerr != nil {
					return oerr
				}
				defer func() { _ = db.Close() }()
				applied, err = migrations.Apply(ctx, db)
			default:
				return fmt.Errorf("%w: %q", server.ErrUnknownDriver, driver)
			}
			if err != nil {
				return fmt.Errorf("migrations: %w", err)
			}

			cmd.Printf("Applied %d migration(s) to %s\n", applied, driver)
			return nil
		},
	}

	cmd.Flags().String(flagDriver, string(server.DriverPostgres), "database driver (postgres or sqlite)")
	cmd.Flags().String(flagURL, os.Getenv("DATABASE_URL"), "postgres connection URL")
	cmd.Flags().String(flagPath, "landing.db", "sqlite database file")
	return cmd
}
