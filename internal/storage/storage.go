package storage

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidLead = errors.New("lead requires an email and a kind")

type RateLimitResult struct {
	Allowed bool
	// RetryAfter is how long the caller should wait before trying again.
	// Zero when Allowed.
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

// Lead is one subscription to the download or helper list.
type Lead struct {
	Email     string    `json:"email"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

func (l Lead) validate() error {
	if l.Email == "" || l.Kind == "" {
		return ErrInvalidLead
	}
	return nil
}

type LeadStore interface {
	// SaveLead stores l unless the same (email, kind) pair already exists.
	// created is false for a duplicate, which is not an error.
	SaveLead(ctx context.Context, l Lead) (created bool, err error)

	Close() error

	Ping(ctx context.Context) error
}

type Backend interface {
	RateLimiter

	Close() error

	Ping(ctx context.Context) error
}
