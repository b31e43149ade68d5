package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"grandhotel/config"
	"grandhotel/infras/kafka"
	kafkaMocks "grandhotel/infras/kafka/mocks"
	otelMocks "grandhotel/infras/otel/mocks"
	"grandhotel/internal/notification"
	"grandhotel/internal/notification/mocks"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func sampleEvent() notification.BookingConfirmed {
	return notification.BookingConfirmed{
		BookingID: "b-1",
		Name:      "Asha",
		Email:     "asha@example.com",
		Room:      "Deluxe King Room",
		Checkin:   "2024-11-01",
		Checkout:  "2024-11-03",
		Price:     5625,
	}
}

func TestTemplateParams(t *testing.T) {
	params := sampleEvent().TemplateParams()

	assert.Equal(t, "asha@example.com", params["to_email"])
	assert.Equal(t, "Asha", params["guest_name"])
	assert.Equal(t, "Deluxe King Room", params["room_type"])
	assert.Equal(t, "2024-11-01", params["checkin_date"])
	assert.Equal(t, "2024-11-03", params["checkout_date"])
	assert.Equal(t, "₹5,625", params["amount"])
}

func TestPublisher_BookingConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Kafka.Topics.BookingConfirmed = "booking.confirmed"

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "published"},
		{name: "broker down", err: errors.New("dial tcp: refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := kafkaMocks.NewMockClient(ctrl)
			event := sampleEvent()

			client.EXPECT().
				Publish(gomock.Any(), "booking.confirmed", kafka.Event{Key: "b-1", Value: event}).
				Return(tt.err)

			err := notification.NewPublisher(client, cfg, otelMocks.NewOtel()).BookingConfirmed(context.Background(), event)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestEmailJS_Send(t *testing.T) {
	var received map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		if received["user_id"] == "bad-key" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("The Public Key is invalid"))

			return
		}

		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	newCfg := func(key string) *config.Config {
		cfg := &config.Config{}
		cfg.External.EmailJS.Endpoint = server.URL
		cfg.External.EmailJS.ServiceID = "service_hotel"
		cfg.External.EmailJS.TemplateID = "template_booking"
		cfg.External.EmailJS.PublicKey = key

		return cfg
	}

	t.Run("sends template params", func(t *testing.T) {
		err := notification.NewEmailJS(newCfg("public-key"), otelMocks.NewOtel()).Send(context.Background(), sampleEvent())

		assert.NoError(t, err)
		assert.Equal(t, "service_hotel", received["service_id"])
		assert.Equal(t, "template_booking", received["template_id"])

		params, ok := received["template_params"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "asha@example.com", params["to_email"])
	})

	t.Run("rejected", func(t *testing.T) {
		err := notification.NewEmailJS(newCfg("bad-key"), otelMocks.NewOtel()).Send(context.Background(), sampleEvent())

		assert.ErrorContains(t, err, "400")
	})

	t.Run("not configured", func(t *testing.T) {
		err := notification.NewEmailJS(newCfg(""), otelMocks.NewOtel()).Send(context.Background(), sampleEvent())

		assert.ErrorIs(t, err, notification.ErrMailerNotConfigured)
	})
}

func TestConsumer_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	payload, _ := json.Marshal(sampleEvent())

	tests := []struct {
		name    string
		msg     kafkaGo.Message
		setup   func(m *mocks.MockMailer)
		wantErr bool
	}{
		{
			name: "sends email",
			msg:  kafkaGo.Message{Key: []byte("b-1"), Value: payload},
			setup: func(m *mocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), sampleEvent()).Return(nil)
			},
		},
		{
			name:  "malformed payload is acknowledged",
			msg:   kafkaGo.Message{Key: []byte("b-2"), Value: []byte("{")},
			setup: func(m *mocks.MockMailer) {},
		},
		{
			name:  "missing email is acknowledged",
			msg:   kafkaGo.Message{Value: []byte(`{"booking_id":"b-3"}`)},
			setup: func(m *mocks.MockMailer) {},
		},
		{
			name: "mailer failure is retried",
			msg:  kafkaGo.Message{Key: []byte("b-1"), Value: payload},
			setup: func(m *mocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := mocks.NewMockMailer(ctrl)
			tt.setup(mailer)

			consumer := notification.NewConsumer(kafkaMocks.NewMockClient(ctrl), mailer, cfg, otelMocks.NewOtel())

			err := consumer.Handle(context.Background(), tt.msg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Kafka.Topics.BookingConfirmed = "booking.confirmed"

	client := kafkaMocks.NewMockClient(ctrl)
	client.EXPECT().Consume(gomock.Any(), "booking.confirmed", gomock.Any()).Return(nil)

	consumer := notification.NewConsumer(client, mocks.NewMockMailer(ctrl), cfg, otelMocks.NewOtel())

	assert.NoError(t, consumer.Run(context.Background()))
}
