package di

import (
	"agenda/infras/kafka"
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/transport/http"
	"context"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// App is the assembled service with the resources it must release on exit.
type App struct {
	HTTP   *http.HTTP
	DB     *postgres.Connection
	Redis  *goRedis.Client
	Events kafka.Client
	Otel   otel.Otel
}

// Close releases resources in reverse order of use: pending events and spans are flushed first.
func (a *App) Close(ctx context.Context) {
	if err := a.Events.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka writer")
	}

	if err := a.Redis.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Redis client")
	}

	a.DB.Close()

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
