package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/GregMSThompson/bank-registry/internal/config"
	"github.com/GregMSThompson/bank-registry/pkg/logger"
)

// Bootstrap holds the logger and the client for the configured store
// backend. Only the client matching cfg.StoreBackend is set.
type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Postgres  *pgxpool.Pool
	Redis     *redis.Client
}

func Run(ctx context.Context, cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = newLogger(cfg)

	switch cfg.StoreBackend {
	case config.BackendFirestore:
		bs.Firestore, err = InitFirestore(ctx, cfg.ProjectID)
	case config.BackendPostgres:
		bs.Postgres, err = InitPostgres(ctx, DefaultPostgresConfig(cfg.DatabaseURL))
	case config.BackendRedis:
		bs.Redis, err = InitRedis(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	if err != nil {
		return bs, fmt.Errorf("init %s backend: %w", cfg.StoreBackend, err)
	}

	bs.Log.Info("bootstrap complete", "store_backend", string(cfg.StoreBackend))
	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Warn("failed to close firestore client", "error", err)
		}
	}
	if bs.Postgres != nil {
		bs.Postgres.Close()
	}
	if bs.Redis != nil {
		if err := bs.Redis.Close(); err != nil {
			bs.Log.Warn("failed to close redis client", "error", err)
		}
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.LogFormat == "text" {
		return logger.New(cfg.LogLevel, logger.NewTextHandler)
	}
	return logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
}
