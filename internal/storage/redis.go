package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var (
	_ Backend   = (*RedisBackend)(nil)
	_ LeadStore = (*RedisLeadStore)(nil)
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	leadsKeyPrefix     = "leads:"
)

type RedisConfig struct {
	Client *redis.Client
}

// RedisBackend limits each key to rateLimit requests per window, shared
// across every server replica.
type RedisBackend struct {
	client     *redis.Client
	rateLimit  int
	rateWindow time.Duration
}

func NewRedisBackend(cfg RedisConfig, rateLimit int, window time.Duration) (*RedisBackend, error) {
	if rateLimit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", rateLimit)
	}
	if window <= 0 {
		window = time.Second
	}
	return &RedisBackend{
		client:     cfg.Client,
		rateLimit:  rateLimit,
		rateWindow: window,
	}, nil
}

func (r *RedisBackend) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	params := rateLimitParams{
		window: r.rateWindow,
		limit:  r.rateLimit,
		ttl:    r.rateWindow + time.Second,
	}

	result, err := runRateLimitScript(ctx, r.client, rateLimitKeyPrefix+key, params)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to run rate limit script: %w", err)
	}
	return result, nil
}

// Close is a no-op; the client is owned by the caller.
func (r *RedisBackend) Close() error {
	return nil
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// RedisLeadStore keeps one hash per kind, keyed by email.
type RedisLeadStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisLeadStore(cfg RedisConfig) *RedisLeadStore {
	return &RedisLeadStore{client: cfg.Client, now: time.Now}
}

func leadsKey(kind string) string {
	return leadsKeyPrefix + strings.ToLower(kind)
}

func (s *RedisLeadStore) SaveLead(ctx context.Context, l Lead) (bool, error) {
	if err := l.validate(); err != nil {
		return false, err
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now().UTC()
	}

	data, err := go_json.Marshal(l)
	if err != nil {
		return false, fmt.Errorf("failed to marshal lead: %w", err)
	}

	created, err := s.client.HSetNX(ctx, leadsKey(l.Kind), l.Email, data).Result()
	if err != nil {
		return false, fmt.Errorf("failed to save lead: %w", err)
	}
	return created, nil
}

// Close is a no-op; the client is owned by the caller.
func (s *RedisLeadStore) Close() error {
	return nil
}

func (s *RedisLeadStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
