package server

import (
	"errors"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/go-cmp/cmp"

	appenv "github.com/garrettladley/landing/internal/env"
)

func TestReadConfigDefaults(t *testing.T) {
	t.Parallel()

	got, err := readConfig(env.Options{Environment: map[string]string{}})
	if err != nil {
		t.Fatalf("readConfig() error = %v", err)
	}

	want := Config{
		Port:            "8080",
		Env:             appenv.Development,
		ShutdownTimeout: 30 * time.Second,
		Database:        Database{Driver: DriverSQLite, Path: "landing.db"},
		RateLimit:       RateLimit{Backend: RateLimitMemory, Limit: 10, Window: time.Minute, Burst: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
		wantErr error
	}{
		{
			name:    "postgres without url",
			environ: map[string]string{"DATABASE_DRIVER": "postgres"},
			wantErr: ErrMissingURL,
		},
		{
			name:    "postgres with url",
			environ: map[string]string{"DATABASE_DRIVER": "postgres", "DATABASE_URL": "postgres://localhost/landing"},
		},
		{
			name:    "unknown driver",
			environ: map[string]string{"DATABASE_DRIVER": "mysql"},
			wantErr: ErrUnknownDriver,
		},
		{
			name:    "redis rate limit without url",
			environ: map[string]string{"RATE_BACKEND": "redis"},
			wantErr: ErrMissingURL,
		},
		{
			name:    "redis store with url",
			environ: map[string]string{"DATABASE_DRIVER": "redis", "REDIS_URL": "redis://localhost:6379"},
		},
		{
			name:    "unknown environment",
			environ: map[string]string{"ENV": "staging"},
			wantErr: ErrUnknownEnv,
		},
		{
			name:    "memory store in production",
			environ: map[string]string{"ENV": "production", "DATABASE_DRIVER": "memory"},
			wantErr: ErrVolatileStore,
		},
		{
			name:    "memory store in development",
			environ: map[string]string{"DATABASE_DRIVER": "memory"},
		},
		{
			name:    "unknown rate limit backend",
			environ: map[string]string{"RATE_BACKEND": "memcached"},
			wantErr: ErrUnknownRateLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := readConfig(env.Options{Environment: tt.environ})
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("readConfig() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("readConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRateLimitPerSecond(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rl   RateLimit
		want float64
	}{
		{RateLimit{Limit: 10, Window: time.Minute}, 10.0 / 60},
		{RateLimit{Limit: 5, Window: time.Second}, 5},
		{RateLimit{Limit: 3}, 3},
	}
	for _, tt := range tests {
		if got := tt.rl.PerSecond(); got != tt.want {
			t.Errorf("%+v.PerSecond() = %v, want %v", tt.rl, got, tt.want)
		}
	}
}
