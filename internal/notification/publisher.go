package notification

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"fmt"

	"grandhotel/config"
	"grandhotel/infras/kafka"
	"grandhotel/infras/otel"
	"grandhotel/shared/constant"

	"github.com/rs/zerolog/log"
)

type Publisher interface {
	BookingConfirmed(ctx context.Context, event BookingConfirmed) (err error)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// BookingConfirmed publishes the event keyed by booking id so redeliveries land on one partition.
func (p *publisherImpl) BookingConfirmed(ctx context.Context, event BookingConfirmed) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelNotificationScopeName, constant.OtelNotificationScopeName+".Publisher.BookingConfirmed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	topic := p.cfg.Kafka.Topics.BookingConfirmed
	scope.SetAttribute("topic", topic)

	err = p.client.Publish(ctx, topic, kafka.Event{Key: event.BookingID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to publish booking confirmed event")

		return fmt.Errorf("failed to publish booking confirmed event: %w", err)
	}

	return nil
}
