package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores values as Redis strings, optionally under a key prefix.
type RedisBackend struct {
	Client *redis.Client
	Prefix string
}

// OpenRedis connects to Redis, retrying the initial ping.
func OpenRedis(ctx context.Context, opts *redis.Options, prefix string, retries int, delay time.Duration) (*RedisBackend, error) {
	client := redis.NewClient(opts)
	var err error
	for i := 0; i <= retries; i++ {
		if err = client.Ping(ctx).Err(); err == nil {
			return NewRedisBackend(client, prefix), nil
		}
		if i < retries {
			log.Printf("Failed to connect to Redis (Attempt %d/%d): %s", i+1, retries+1, err.Error())
			if !sleep(ctx, delay) {
				break
			}
		}
	}
	client.Close()
	return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
}

func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{Client: client, Prefix: prefix}
}

func (r *RedisBackend) key(k string) string {
	return r.Prefix + k
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.Client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return v, err
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	return r.Client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, r.key(key)).Err()
}

func (r *RedisBackend) Close() error {
	return r.Client.Close()
}
