package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var migrationsFS embed.FS

// Migration is one embedded .sql file split into statements.
type Migration struct {
	Name       string
	Statements []string
}

// Target is a database that records which migrations it has applied.
type Target interface {
	EnsureHistory(ctx context.Context) error
	IsApplied(ctx context.Context, name string) (bool, error)
	// Apply runs every statement of m and records it, atomically.
	Apply(ctx context.Context, m Migration) error
}

// Load reads every .sql file in dir of fsys, ordered by name.
func Load(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, dir+"/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		m := Migration{Name: name}
		for stmt := range strings.SplitSeq(string(content), ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				m.Statements = append(m.Statements, stmt)
			}
		}
		migrations = append(migrations, m)
	}
	return migrations, nil
}

// Run applies every migration not yet recorded by t and returns how many ran.
func Run(ctx context.Context, t Target, migrations []Migration) (int, error) {
	if err := t.EnsureHistory(ctx); err != nil {
		return 0, err
	}

	var applied int
	for _, m := range migrations {
		done, err := t.IsApplied(ctx, m.Name)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}
		if err := t.Apply(ctx, m); err != nil {
			return applied, fmt.Errorf("failed to execute migration %s: %w", m.Name, err)
		}
		applied++
	}
	return applied, nil
}

// Apply runs the embedded sqlite migrations against db.
func Apply(ctx context.Context, db *sql.DB) (int, error) {
	migrations, err := Load(migrationsFS, migrationsDir)
	if err != nil {
		return 0, err
	}
	return Run(ctx, &sqliteTarget{db: db}, migrations)
}

type sqliteTarget struct {
	db *sql.DB
}

func (t *sqliteTarget) EnsureHistory(ctx context.Context) error {
	_, err := t.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating migrations history table: %w", err)
	}
	return nil
}

func (t *sqliteTarget) IsApplied(ctx context.Context, name string) (bool, error) {
	var count int
	err := t.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations_history WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking if migration applied: %w", err)
	}
	return count > 0, nil
}

func (t *sqliteTarget) Apply(ctx context.Context, m Migration) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range m.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO migrations_history (name) VALUES (?)", m.Name); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}
	return tx.Commit()
}
