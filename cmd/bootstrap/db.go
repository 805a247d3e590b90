package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/docstore"
	"restaurant-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewBackend,
	),
)

// NewBackend opens the document backend selected by STORE_DRIVER. Connections are
// only opened for the driver in use.
func NewBackend(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (docstore.Backend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var (
		backend docstore.Backend
		err     error
	)
	switch cfg.Store.Driver {
	case DriverMemory:
		backend = docstore.NewMemoryBackend()
	case DriverFile:
		backend, err = docstore.NewFileBackend(cfg.Store.DataDir)
	case DriverPostgres:
		var pool *pgxpool.Pool
		pool, err = NewDB(ctx, lc, cfg.DB)
		if err != nil {
			return nil, err
		}
		pg := docstore.NewPostgresBackend(pool)
		err = pg.EnsureSchema(ctx)
		backend = pg
	case DriverRedis:
		var client *redis.Client
		client, err = NewRedis(ctx, lc, cfg.Redis)
		if err != nil {
			return nil, err
		}
		backend = docstore.NewRedisBackend(client, cfg.Redis.KeyPrefix)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("document store ready", "driver", backend.Name())
	return backend, nil
}

func NewDB(ctx context.Context, lc fx.Lifecycle, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewRedis(ctx context.Context, lc fx.Lifecycle, cfg config.RedisConfig) (*redis.Client, error) {
	client, cleanup, err := db.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
