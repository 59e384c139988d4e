package internal

import (
	"context"
	"fmt"

	"github.com/2beens/gymroutines/internal/config"
	"github.com/2beens/gymroutines/internal/db"
	"github.com/2beens/gymroutines/internal/kvstore"
	"github.com/2beens/gymroutines/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type OpenStoreParams struct {
	Config         *config.Config
	RedisClient    *redis.Client
	PromRegistry   prometheus.Registerer // optional
	TracingEnabled bool
}

// OpenStore builds the durable mirror selected by the config, optionally
// wrapped by the in-process cache. The returned pool is non-nil only for the
// postgres backend and is owned by the caller.
func OpenStore(ctx context.Context, params OpenStoreParams) (kvstore.Store, *pgxpool.Pool, error) {
	cfg := params.Config

	var (
		store  kvstore.Store
		dbPool *pgxpool.Pool
	)
	switch cfg.StoreBackend {
	case kvstore.BackendMemory:
		log.Warnln("using in-memory store, data will not survive a restart")
		store = kvstore.NewMemoryStore()
	case kvstore.BackendRedis:
		if params.RedisClient == nil {
			return nil, nil, fmt.Errorf("redis store backend needs a redis client")
		}
		store = kvstore.NewRedisStore(params.RedisClient)
	case kvstore.BackendPostgres:
		var err error
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		if params.PromRegistry != nil {
			if err := metrics.RegisterDBPool(params.PromRegistry, dbPool, cfg.PostgresDBName); err != nil {
				log.Warnf("register db pool collector: %s", err)
			}
		}

		psqlStore := kvstore.NewPsqlStore(dbPool)
		if err := psqlStore.EnsureSchema(ctx); err != nil {
			dbPool.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		store = psqlStore
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}

	if cfg.CacheEnabled {
		store = kvstore.NewCached(store, cfg.CacheSizeMB*1024*1024, cfg.CacheExpireSeconds)
	}
	return store, dbPool, nil
}
