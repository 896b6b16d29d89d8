package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"agenda/infras/otel"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

type RedisCache interface {
	Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment bumps a fixed-window counter. The expiry is set only when the key is
// created, so the window does not slide with every hit.
func (cache *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, time.Duration(windowSeconds)*time.Second)

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment cache counter: %w", err)
	}

	return incr.Val(), nil
}
