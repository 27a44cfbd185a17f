package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/garrettladley/landing/internal/migrations"
	"github.com/garrettladley/landing/internal/migrations/postgres"
	xredis "github.com/garrettladley/landing/internal/redis"
	"github.com/garrettladley/landing/internal/server"
	"github.com/garrettladley/landing/internal/server/handler"
	"github.com/garrettladley/landing/internal/service/lead"
	"github.com/garrettladley/landing/internal/storage"
	"github.com/garrettladley/landing/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout, xslog.FormatJSON)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = xslog.WithLogger(ctx, logger)
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := server.ReadConfig()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var redisClient *redis.Client
	if cfg.NeedsRedis() {
		redisClient, err = xredis.New(ctx, xredis.Config{URL: cfg.Redis.URL})
		if err != nil {
			return fmt.Errorf("failed to initialize redis client: %w", err)
		}
		defer func() { _ = redisClient.Close() }()
	}

	leads, err := initLeadStore(ctx, cfg, redisClient, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize lead store: %w", err)
	}
	defer func() {
		if err := leads.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close lead store", xslog.Error(err))
		}
	}()

	limiter, err := initRateLimiter(ctx, cfg, redisClient, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize rate limiter: %w", err)
	}
	defer func() {
		if err := limiter.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close rate limiter", xslog.Error(err))
		}
	}()

	router := server.NewRouter(logger, server.Deps{
		Leads:   lead.NewStore(leads),
		Limiter: limiter,
		Pingers: []handler.Pinger{leads, limiter},
	})

	httpServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return server.Serve(ctx, httpServer, ln, cfg.ShutdownTimeout)
}

func initLeadStore(ctx context.Context, cfg server.Config, redisClient *redis.Client, logger *slog.Logger) (storage.LeadStore, error) {
	logger.InfoContext(ctx, "initializing lead store", xslog.Driver(string(cfg.Database.Driver)))

	switch cfg.Database.Driver {
	case server.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
		applied, err := postgres.Apply(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		logger.InfoContext(ctx, "applied migrations", xslog.Count(applied))
		return storage.NewPostgresLeadStore(pool), nil
	case server.DriverSQLite:
		db, err := storage.OpenSQLite(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		applied, err := migrations.Apply(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		logger.InfoContext(ctx, "applied migrations", xslog.Count(applied), xslog.Path(cfg.Database.Path))
		return storage.NewSQLiteLeadStore(db), nil
	case server.DriverRedis:
		return storage.NewRedisLeadStore(storage.RedisConfig{Client: redisClient}), nil
	case server.DriverMemory:
		logger.WarnContext(ctx, "leads are kept in memory and lost on restart")
		return storage.NewMemoryLeadStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", server.ErrUnknownDriver, cfg.Database.Driver)
	}
}

func initRateLimiter(ctx context.Context, cfg server.Config, redisClient *redis.Client, logger *slog.Logger) (storage.Backend, error) {
	rl := cfg.RateLimit
	logger.InfoContext(ctx, "initializing rate limiter",
		slog.String("backend", string(rl.Backend)),
		slog.Int("limit", rl.Limit),
		slog.Duration("window", rl.Window),
	)

	switch rl.Backend {
	case server.RateLimitRedis:
		return storage.NewRedisBackend(storage.RedisConfig{Client: redisClient}, rl.Limit, rl.Window)
	case server.RateLimitMemory:
		return storage.NewMemoryBackend(rl.PerSecond(), rl.Burst), nil
	default:
		return nil, fmt.Errorf("%w: %q", server.ErrUnknownRateLimit, rl.Backend)
	}
}
