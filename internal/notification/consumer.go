package notification

import (
	"context"
	"fmt"

	"grandhotel/config"
	"grandhotel/infras/kafka"
	"grandhotel/infras/otel"
	"grandhotel/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer turns booking.confirmed events into confirmation emails.
type Consumer struct {
	client kafka.Client
	mailer Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func NewConsumer(client kafka.Client, mailer Mailer, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client: client,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

// Run blocks until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	topic := c.cfg.Kafka.Topics.BookingConfirmed

	log.Info().Str("topic", topic).Str("group", c.cfg.Kafka.ConsumerGroup).Msg("notifier consuming")

	if err := c.client.Consume(ctx, topic, c.Handle); err != nil {
		return fmt.Errorf("failed to consume %s: %w", topic, err)
	}

	return nil
}

// Handle sends one email. Malformed payloads are logged and acknowledged so they do not block the partition.
func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingConfirmed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[BookingConfirmed](msg)
	if err != nil {
		log.Warn().Err(err).Str("key", string(msg.Key)).Msg("skipping malformed booking event")

		return nil
	}

	if event.Email == constant.Empty {
		log.Warn().Str("booking_id", event.BookingID).Msg("booking event has no email, skipping")

		return nil
	}

	if err = c.mailer.Send(ctx, event); err != nil {
		return fmt.Errorf("failed to notify guest: %w", err)
	}

	return nil
}
