package main

import (
	"cyclebook/config"
	"cyclebook/di"
	"cyclebook/helper"
	"cyclebook/shared/logger"
	"cyclebook/shared/timezone"
	"cyclebook/shared/validator"

	"github.com/rs/zerolog/log"
)

// @title Cyclebook API
// @version 1.0
// @description Campus cycle booking: riders book, hosts start and stop rides.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	timezone.Init(cfg.App.Timezone)
	validator.SetInstitutionDomain(cfg.App.InstitutionDomain)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	http.Serve()
}
