package notification

//go:generate go run go.uber.org/mock/mockgen -source=./emailjs.go -destination=./mocks/emailjs_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/shared/constant"

	"github.com/rs/zerolog/log"
)

var ErrMailerNotConfigured = errors.New("emailjs public key is not configured")

type Mailer interface {
	Send(ctx context.Context, event BookingConfirmed) (err error)
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

type emailJSImpl struct {
	cfg    *config.Config
	otel   otel.Otel
	client *http.Client
}

func NewEmailJS(cfg *config.Config, otel otel.Otel) Mailer {
	return &emailJSImpl{
		cfg:  cfg,
		otel: otel,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (m *emailJSImpl) Send(ctx context.Context, event BookingConfirmed) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".EmailJS.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	settings := m.cfg.External.EmailJS
	if settings.PublicKey == constant.Empty {
		return ErrMailerNotConfigured
	}

	payload, err := json.Marshal(emailJSRequest{
		ServiceID:      settings.ServiceID,
		TemplateID:     settings.TemplateID,
		UserID:         settings.PublicKey,
		TemplateParams: event.TemplateParams(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, settings.Endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := m.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to send confirmation email")

		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	defer resp.Body.Close()

	scope.SetAttribute("status_code", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("emailjs rejected confirmation email")

		return fmt.Errorf("emailjs returned status %d: %s", resp.StatusCode, string(body))
	}

	log.Info().Str("booking_id", event.BookingID).Str("to", event.Email).Msg("confirmation email sent")

	return nil
}
