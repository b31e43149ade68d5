package main

import (
	"os"

	"grandhotel/config"
	"grandhotel/di"
	"grandhotel/helper"
	"grandhotel/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title GrandHotel API
// @version 1.0
// @description Rooms, bookings, inquiries and the admin dashboard of the GrandHotel website.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.Init(cfg, os.Stdout, zerolog.TraceLevel)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
