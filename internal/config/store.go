package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/gradebook/internal/storage"
	"github.com/mmynk/gradebook/internal/storage/redis"
	"github.com/mmynk/gradebook/internal/storage/sqlite"
)

// OpenStore opens the record store selected by store.driver.
func (c *Config) OpenStore(ctx context.Context) (storage.Store, error) {
	switch c.Store.Driver {
	case DriverSQLite:
		store, err := sqlite.New(c.Store.Path)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "driver", DriverSQLite, "database", c.Store.Path)
		return store, nil
	case DriverRedis:
		store, err := redis.New(ctx, redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "driver", DriverRedis, "addr", c.Redis.Addr, "prefix", c.Redis.Prefix)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
}
