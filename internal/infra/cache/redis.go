package cache

import (
	"github.com/openobs/telescope-queue/internal/config"
	"github.com/redis/go-redis/v9"
)

// New builds the redis client the telescope-status feed is read from.
func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}
