package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"grandhotel/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/segmentio/kafka-go/sasl/plain"
)

var ErrEmptyTopic = errors.New("topic name cannot be empty")

// Event is a keyed payload serialised as JSON on the wire.
type Event struct {
	Key   string
	Value any
}

func (e Event) encode() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(e.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event value: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(e.Key),
		Value: jsonValue,
	}, nil
}

// Decode unmarshals a raw message value into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to decode kafka message")

		return value, fmt.Errorf("failed to decode kafka message: %w", err)
	}

	return value, nil
}

type Client interface {
	Publish(ctx context.Context, topic string, events ...Event) (err error)
	Consume(ctx context.Context, topic string, handler func(ctx context.Context, msg kafkaGo.Message) error) (err error)
}

type kafkaClientImpl struct {
	config      *config.Config
	dialer      *kafkaGo.Dialer
	transport   *kafkaGo.Transport
	address     net.Addr
	compression compress.Compression
}

func New(config *config.Config) Client {
	mechanism := plain.Mechanism{
		Username: config.Kafka.SASL.Username,
		Password: config.Kafka.SASL.Password,
	}

	dialer := &kafkaGo.Dialer{
		DualStack:     true,
		SASLMechanism: mechanism,
	}

	transport := &kafkaGo.Transport{
		SASL: mechanism,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("kafka client initialized")

	return &kafkaClientImpl{
		config:      config,
		dialer:      dialer,
		transport:   transport,
		address:     kafkaGo.TCP(config.Kafka.Brokers...),
		compression: Compression(config.Kafka.Compression),
	}
}

// Compression maps a codec name onto the kafka-go codec, snappy by default.
func Compression(name string) compress.Compression {
	switch name {
	case "none":
		return compress.None
	case "gzip":
		return compress.Gzip
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	default:
		return compress.Snappy
	}
}

func (k *kafkaClientImpl) Publish(ctx context.Context, topic string, events ...Event) (err error) {
	if topic == "" {
		return ErrEmptyTopic
	}

	msgs := make([]kafkaGo.Message, 0, len(events))

	for _, event := range events {
		msg, err := event.encode()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to encode event")

			return err
		}

		msgs = append(msgs, msg)
	}

	writer := &kafkaGo.Writer{
		Addr:                   k.address,
		Topic:                  topic,
		Transport:              k.transport,
		Balancer:               &kafkaGo.Hash{},
		Compression:            k.compression,
		RequiredAcks:           kafkaGo.RequireAll,
		AllowAutoTopicCreation: true,
	}

	defer func() {
		if closeErr := writer.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("topic", topic).Msg("failed to close kafka writer")
		}
	}()

	err = writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish events")

		return fmt.Errorf("failed to publish events: %w", err)
	}

	log.Info().Str("topic", topic).Int("count", len(msgs)).Msg("published events")

	return nil
}

// Consume reads the topic with the configured consumer group until ctx is done.
// A message is committed only after handler returns nil.
func (k *kafkaClientImpl) Consume(ctx context.Context, topic string, handler func(ctx context.Context, msg kafkaGo.Message) error) (err error) {
	if topic == "" {
		return ErrEmptyTopic
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     k.config.Kafka.ConsumerGroup,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close kafka reader")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("consumer stopped")

				return nil
			}

			log.Error().Err(err).Str("topic", topic).Msg("failed to fetch kafka message")

			return fmt.Errorf("failed to fetch kafka message: %w", err)
		}

		if err := handler(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", string(msg.Key)).Msg("handler failed, message left uncommitted")

			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to commit kafka message")
		}
	}
}
