package main

import (
	"os"

	"grandhotel/config"
	"grandhotel/helper"
	"grandhotel/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.Init(cfg, os.Stdout, zerolog.TraceLevel)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop or version")
	}

	if err := helper.Runner(cfg, helper.Action(os.Args[1])); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
