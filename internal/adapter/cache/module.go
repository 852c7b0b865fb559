package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/scentshop/internal/config"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// Module wires the Redis client and the cart store.
var Module = fx.Options(
	fx.Provide(newRedisClient),
	fx.Provide(newCartStore),
	fx.Provide(func(s *CartStore) repository.CartRepository { return s }),
	fx.Invoke(registerLifecycle),
)

func newRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

func newCartStore(rdb *redis.Client, cfg *config.Config) *CartStore {
	return NewCartStore(rdb, cfg.CartTTL)
}

func registerLifecycle(lc fx.Lifecycle, rdb *redis.Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})
}
