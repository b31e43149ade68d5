package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"grandhotel/config"
	"grandhotel/di"
	"grandhotel/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.Init(cfg, os.Stdout, zerolog.TraceLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeNotifier()

	log.Info().Str("topic", cfg.Kafka.Topics.BookingConfirmed).Msg("Waiting for confirmed bookings.")

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Notifier stopped")
	}

	log.Info().Msg("Notifier shut down.")
}
