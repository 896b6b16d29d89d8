package router

import (
	"agenda/config"
	_ "agenda/docs" // swagger spec
	"agenda/internal/handlers/booking"
	"agenda/transport/http/middleware"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Booking booking.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(r.Middleware.Logging)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middleware.Tracing)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())

		if timeout := r.Config.Server.WriteTimeoutSeconds; timeout > 0 {
			routerGroup.Use(chiMiddleware.Timeout(time.Duration(timeout) * time.Second))
		}

		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(cfg *config.Config, domainHandlers DomainHandlers, middleware middleware.AppMiddleware) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
