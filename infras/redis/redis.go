package redis

import (
	"agenda/config"
	"context"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary Redis used by the rate limiter. The client is only
// dialed when the limiter is enabled.
func New(config *config.Config) *goRedis.Client {
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(config.Cache.Redis.Primary.Host, config.Cache.Redis.Primary.Port),
		Password: config.Cache.Redis.Primary.Password,
		DB:       config.Cache.Redis.Primary.DB,
	})

	if !config.App.RateLimiter.Enable {
		log.Info().Msg("Rate limiter disabled, skipping Redis ping")

		return client
	}

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", config.Cache.Redis.Primary.DB).
		Str("host", config.Cache.Redis.Primary.Host).
		Str("port", config.Cache.Redis.Primary.Port).
		Msg("Connected to Redis")

	return client
}
