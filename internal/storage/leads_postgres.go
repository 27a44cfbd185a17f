package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ LeadStore = (*PostgresLeadStore)(nil)

const insertLeadPostgres = `INSERT INTO leads (email, kind) VALUES ($1, $2) ON CONFLICT (email, kind) DO NOTHING`

type PostgresLeadStore struct {
	pool *pgxpool.Pool
}

func NewPostgresLeadStore(pool *pgxpool.Pool) *PostgresLeadStore {
	return &PostgresLeadStore{pool: pool}
}

func (s *PostgresLeadStore) SaveLead(ctx context.Context, l Lead) (bool, error) {
	if err := l.validate(); err != nil {
		return false, err
	}

	tag, err := s.pool.Exec(ctx, insertLeadPostgres, l.Email, l.Kind)
	if err != nil {
		return false, fmt.Errorf("failed to insert lead: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PostgresLeadStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresLeadStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
