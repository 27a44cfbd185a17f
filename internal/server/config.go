package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/garrettladley/landing/internal/env"
)

// Driver selects where leads are stored.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverRedis    Driver = "redis"
	DriverMemory   Driver = "memory"
)

// RateLimitBackend selects where per-IP request counts live.
type RateLimitBackend string

const (
	RateLimitMemory RateLimitBackend = "memory"
	RateLimitRedis  RateLimitBackend = "redis"
)

var (
	ErrUnknownDriver    = errors.New("unknown database driver")
	ErrUnknownRateLimit = errors.New("unknown rate limit backend")
	ErrMissingURL       = errors.New("missing connection URL")
	ErrUnknownEnv       = errors.New("unknown environment")
	ErrVolatileStore    = errors.New("memory lead store is not allowed in production")
)

type Config struct {
	Port            string             `env:"PORT" envDefault:"8080"`
	Env             appenv.Environment `env:"ENV" envDefault:"development"`
	ShutdownTimeout time.Duration      `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Database        Database           `envPrefix:"DATABASE_"`
	Redis           Redis              `envPrefix:"REDIS_"`
	RateLimit       RateLimit          `envPrefix:"RATE_"`
}

type Database struct {
	Driver Driver `env:"DRIVER" envDefault:"sqlite"`
	URL    string `env:"URL"`
	// Path is the sqlite database file.
	Path string `env:"PATH" envDefault:"landing.db"`
}

type Redis struct {
	URL string `env:"URL"`
}

type RateLimit struct {
	Backend RateLimitBackend `env:"BACKEND" envDefault:"memory"`
	// Limit requests are allowed per Window for each client IP.
	Limit  int           `env:"LIMIT" envDefault:"10"`
	Window time.Duration `env:"WINDOW" envDefault:"1m"`
	// Burst only applies to the memory backend.
	Burst int `env:"BURST" envDefault:"5"`
}

// PerSecond is the steady refill rate of the memory token bucket.
func (r RateLimit) PerSecond() float64 {
	if r.Window <= 0 {
		return float64(r.Limit)
	}
	return float64(r.Limit) / r.Window.Seconds()
}

func ReadConfig() (Config, error) {
	return readConfig(env.Options{})
}

func readConfig(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NeedsRedis reports whether any configured component talks to redis.
func (c Config) NeedsRedis() bool {
	return c.Database.Driver == DriverRedis || c.RateLimit.Backend == RateLimitRedis
}

func (c Config) Validate() error {
	if !c.Env.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEnv, c.Env)
	}
	if c.Env.IsProduction() && c.Database.Driver == DriverMemory {
		return ErrVolatileStore
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for %s", ErrMissingURL, c.Database.Driver)
		}
	case DriverSQLite, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Database.Driver)
	}

	switch c.RateLimit.Backend {
	case RateLimitMemory, RateLimitRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRateLimit, c.RateLimit.Backend)
	}

	if c.NeedsRedis() && c.Redis.URL == "" {
		return fmt.Errorf("%w: REDIS_URL is required", ErrMissingURL)
	}
	return nil
}
