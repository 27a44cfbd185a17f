package lead

import (
	"context"
	"fmt"

	"github.com/garrettladley/landing/internal/storage"
	"github.com/garrettladley/landing/internal/validator"
	"github.com/garrettladley/landing/internal/xslog"
)

var _ Service = (*Store)(nil)

type Store struct {
	leads storage.LeadStore
}

func NewStore(leads storage.LeadStore) *Store {
	return &Store{leads: leads}
}

func (s *Store) Subscribe(ctx context.Context, req SubscribeRequest) (*SubscribeResult, error) {
	logger := xslog.FromContext(ctx)

	if req.IsBot() {
		logger.InfoContext(ctx, "ignoring honeypot submission", xslog.LeadKind(req.Kind.String()))
		return &SubscribeResult{Ignored: true}, nil
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	created, err := s.leads.SaveLead(ctx, storage.Lead{Email: req.Email, Kind: req.Kind.String()})
	if err != nil {
		return nil, fmt.Errorf("saving lead: %w", err)
	}

	logger.InfoContext(ctx, "lead subscribed",
		xslog.LeadKind(req.Kind.String()),
		xslog.Created(created),
	)

	return &SubscribeResult{Created: created}, nil
}
