// Package redis provides a Redis-backed implementation of the storage.Store
// interface, for running several server instances against one history.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mmynk/gradebook/internal/storage"
)

// DefaultPrefix namespaces gradebook keys inside a shared Redis database.
const DefaultPrefix = "gradebook:"

var _ storage.Store = (*RedisStore)(nil)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int

	// Prefix is prepended to every key. Empty means DefaultPrefix.
	Prefix string
}

// RedisStore implements storage.Store with plain string values.
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
}

// New connects to Redis and checks the connection with PING.
func New(ctx context.Context, opts Options) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RedisStore{rdb: rdb, prefix: prefix}, nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// Get retrieves the value stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &storage.Error{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

// Set replaces the value stored under key. Values never expire.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return &storage.Error{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Remove deletes key if present.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return &storage.Error{Op: "remove", Key: key, Err: err}
	}
	return nil
}
