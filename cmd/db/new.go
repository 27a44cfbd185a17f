package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// both dialects are kept in step, so a new migration gets a file in each
var migrationDirs = []string{
	filepath.Join("internal", "migrations", "sql"),
	filepath.Join("internal", "migrations", "postgres", "sql"),
}

func newMigrationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new migration file for every dialect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := createMigration(migrationDirs, args[0])
			if err != nil {
				return err
			}
			for _, filename := range created {
				cmd.Printf("Created migration: %s\n", filename)
			}
			return nil
		},
	}
}

// createMigration writes the next numbered file named name into each of
// dirs. The number is shared so the dialects stay aligned.
func createMigration(dirs []string, name string) ([]string, error) {
	if name == "" || strings.ContainsAny(name, `/\ `) {
		return nil, fmt.Errorf("invalid migration name %q", name)
	}

	var nextNum int
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read migrations directory: %w", err)
		}
		nextNum = max(nextNum, getNextMigrationNum(entries))
	}

	created := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		filename := filepath.Join(dir, fmt.Sprintf("%06d_%s.sql", nextNum, name))
		if _, err := os.Stat(filename); err == nil {
			return created, fmt.Errorf("migration file already exists: %s", filename)
		}

		content := fmt.Sprintf("-- Migration: %s\n\n", name)
		if err := os.WriteFile(filename, []byte(content), 0o600); err != nil {
			return created, fmt.Errorf("failed to create migration file: %w", err)
		}
		created = append(created, filename)
	}
	return created, nil
}

func getNextMigrationNum(entries []os.DirEntry) int {
	var nextNum int
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		prefix, _, _ := strings.Cut(entry.Name(), "_")
		var num int
		if _, err := fmt.Sscanf(prefix, "%d", &num); err != nil {
			continue
		}
		nextNum = max(nextNum, num)
	}
	return nextNum + 1
}
