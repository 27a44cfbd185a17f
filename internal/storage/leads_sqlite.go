package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

var _ LeadStore = (*SQLiteLeadStore)(nil)

const insertLeadSQLite = `INSERT INTO leads (email, kind) VALUES (?, ?) ON CONFLICT (email, kind) DO NOTHING`

type SQLiteLeadStore struct {
	db *sql.DB
}

// OpenSQLite opens the database at path with foreign keys and WAL enabled.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// one writer; sqlite serializes writes anyway
	db.SetMaxOpenConns(1)
	return db, nil
}

func NewSQLiteLeadStore(db *sql.DB) *SQLiteLeadStore {
	return &SQLiteLeadStore{db: db}
}

func (s *SQLiteLeadStore) SaveLead(ctx context.Context, l Lead) (bool, error) {
	if err := l.validate(); err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, insertLeadSQLite, l.Email, l.Kind)
	if err != nil {
		return false, fmt.Errorf("failed to insert lead: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

func (s *SQLiteLeadStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteLeadStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
