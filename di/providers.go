package di

import (
	"io"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/infras/sqlite"
	"grandhotel/internal/console"
	bookingService "grandhotel/internal/domains/booking/service"
	"grandhotel/internal/gateway"
	"grandhotel/internal/notification"
	"grandhotel/internal/workflow"

	"github.com/rs/zerolog/log"
)

// newCheckoutEngine drives web checkouts straight into the booking service.
func newCheckoutEngine(cfg *config.Config, bookings bookingService.Booking, otel otel.Otel) *workflow.Engine {
	return workflow.New(cfg, workflow.ServiceStore(bookings), nil, nil, otel)
}

// newConsoleEngine books through the gateway and emails guests whose booking stayed offline.
func newConsoleEngine(cfg *config.Config, gw gateway.Gateway, mailer notification.Mailer, otel otel.Otel) *workflow.Engine {
	return workflow.New(cfg, workflow.GatewayStore(gw), workflow.MailerNotifier(mailer), nil, otel)
}

func newMirror(cfg *config.Config, otel otel.Otel) (sqlite.Mirror, func(), error) {
	mirror, err := sqlite.New(cfg, otel)
	if err != nil {
		return nil, nil, err
	}

	return mirror, func() {
		if err := mirror.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close local mirror")
		}
	}, nil
}

func newConsole(gw gateway.Gateway, engine *workflow.Engine, out io.Writer) *console.Console {
	return console.New(gw, engine, nil, out)
}
