package main

import (
	"agenda/config"
	"agenda/di"
	"agenda/helper"
	"agenda/shared/logger"
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

// @title Agenda API
// @version 1.0
// @description Room booking calendar: one booking per date, time slot and location.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	app := di.InitializeService()

	err := app.HTTP.Serve()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	app.Close(ctx)

	if err != nil {
		log.Fatal().Err(err).Msg("HTTP server stopped unexpectedly")
	}
}
