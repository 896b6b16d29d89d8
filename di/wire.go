//go:build wireinject
// +build wireinject

package di

import (
	"agenda/config"
	"agenda/infras/kafka"
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/infras/redis"
	"agenda/shared/cache"
	"agenda/transport/http"
	"agenda/transport/http/middleware"
	"agenda/transport/http/router"

	bookingRepository "agenda/internal/domains/booking/repository"
	bookingService "agenda/internal/domains/booking/service"
	bookingHandler "agenda/internal/handlers/booking"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
