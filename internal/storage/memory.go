package storage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var (
	_ Backend   = (*MemoryBackend)(nil)
	_ LeadStore = (*MemoryLeadStore)(nil)
)

const (
	defaultIdleTTL      = 15 * time.Minute
	defaultCleanupEvery = time.Minute
)

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// MemoryBackend is a per-key token bucket limiter for a single process.
type MemoryBackend struct {
	limiters  map[string]*limiterEntry
	limiterMu sync.Mutex
	rateLimit rate.Limit
	rateBurst int
	idleTTL   time.Duration
	now       func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

type MemoryOption func(*MemoryBackend)

func WithIdleTTL(d time.Duration) MemoryOption {
	return func(m *MemoryBackend) { m.idleTTL = d }
}

func withClock(now func() time.Time) MemoryOption {
	return func(m *MemoryBackend) { m.now = now }
}

func NewMemoryBackend(ratePerSec float64, burst int, opts ...MemoryOption) *MemoryBackend {
	m := &MemoryBackend{
		limiters:  make(map[string]*limiterEntry),
		rateLimit: rate.Limit(ratePerSec),
		rateBurst: burst,
		idleTTL:   defaultIdleTTL,
		now:       time.Now,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	go m.cleanupLoop()

	return m
}

func (m *MemoryBackend) Allow(_ context.Context, key string) (RateLimitResult, error) {
	now := m.now()

	m.limiterMu.Lock()
	ent, ok := m.limiters[key]
	if !ok {
		ent = &limiterEntry{lim: rate.NewLimiter(m.rateLimit, m.rateBurst)}
		m.limiters[key] = ent
	}
	ent.lastSeen = now
	m.limiterMu.Unlock()

	r := ent.lim.ReserveN(now, 1)
	if !r.OK() {
		return RateLimitResult{RetryAfter: time.Second}, nil
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return RateLimitResult{RetryAfter: delay}, nil
	}
	return RateLimitResult{Allowed: true}, nil
}

// Len is the number of keys currently tracked.
func (m *MemoryBackend) Len() int {
	m.limiterMu.Lock()
	defer m.limiterMu.Unlock()
	return len(m.limiters)
}

func (m *MemoryBackend) cleanup() {
	cutoff := m.now().Add(-m.idleTTL)

	m.limiterMu.Lock()
	defer m.limiterMu.Unlock()

	for key, ent := range m.limiters {
		if ent.lastSeen.Before(cutoff) {
			delete(m.limiters, key)
		}
	}
}

func (m *MemoryBackend) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return nil
}

func (m *MemoryBackend) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryBackend) cleanupLoop() {
	ticker := time.NewTicker(defaultCleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.done:
			return
		}
	}
}

type leadKey struct {
	email string
	kind  string
}

// MemoryLeadStore keeps leads in a map. Used in development and tests.
type MemoryLeadStore struct {
	mu    sync.RWMutex
	leads map[leadKey]Lead
	order []leadKey
	now   func() time.Time
}

func NewMemoryLeadStore() *MemoryLeadStore {
	return &MemoryLeadStore{
		leads: make(map[leadKey]Lead),
		now:   time.Now,
	}
}

func (s *MemoryLeadStore) SaveLead(_ context.Context, l Lead) (bool, error) {
	if err := l.validate(); err != nil {
		return false, err
	}

	key := leadKey{email: l.Email, kind: l.Kind}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.leads[key]; ok {
		return false, nil
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now()
	}
	s.leads[key] = l
	s.order = append(s.order, key)
	return true, nil
}

// Leads returns every stored lead in insertion order.
func (s *MemoryLeadStore) Leads() []Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Lead, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.leads[key])
	}
	return out
}

func (s *MemoryLeadStore) Close() error {
	return nil
}

func (s *MemoryLeadStore) Ping(_ context.Context) error {
	return nil
}
