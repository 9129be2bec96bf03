package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"roombook/config"
	"roombook/di"
	"roombook/shared/logger"
)

// @title Roombook API
// @version 1.0
// @description Room catalog, booking and availability search.
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	app := di.InitializeService()

	if cfg.Seed.OnStart {
		if _, err := app.Seeder.Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed room catalog")
		}
	}

	app.HTTP.Serve()
}
