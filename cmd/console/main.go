package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"grandhotel/config"
	"grandhotel/di"
	"grandhotel/internal/console"
	"grandhotel/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.Init(cfg, os.Stderr, zerolog.WarnLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, cleanup, err := di.InitializeConsole(os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open console")
	}

	err = c.Run(ctx, os.Args[1:])

	cleanup()

	if err != nil {
		if !errors.Is(err, console.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
