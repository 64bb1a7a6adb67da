package storage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"medicab-server/internal/config"
)

// Open builds the backend named in cfg.
func Open(ctx context.Context, cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		return NewMemoryBackend(), nil
	case config.BackendMySQL:
		return OpenMySQL(cfg.Database.DSN)
	case config.BackendRedis:
		return OpenRedis(ctx, &redis.Options{
			Network:  "tcp",
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.KeyPrefix, cfg.Retries, cfg.RetryDelay)
	case config.BackendMongo:
		return OpenMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	case config.BackendRemote:
		return NewRemoteBackend(cfg.Remote.URL, cfg.Remote.Secret, &http.Client{Timeout: cfg.Timeout}), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// OptionsFrom extracts the Store options from cfg.
func OptionsFrom(cfg config.StorageConfig) Options {
	return Options{
		Timeout:    cfg.Timeout,
		Retries:    cfg.Retries,
		RetryDelay: cfg.RetryDelay,
	}
}
