package workflow

import (
	"context"

	bookingDto "grandhotel/internal/domains/booking/model/dto"
	bookingService "grandhotel/internal/domains/booking/service"
	"grandhotel/internal/gateway"
	"grandhotel/internal/notification"
)

// Saved is a persisted booking. Offline is set when only the local mirror holds it.
type Saved struct {
	Booking bookingDto.BookingResponse
	Offline bool
}

type Store interface {
	Save(ctx context.Context, req bookingDto.CreateBookingRequest) (Saved, error)
}

type Notifier interface {
	Notify(ctx context.Context, saved Saved) error
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Saved) error {
	return nil
}

type gatewayStore struct {
	gateway gateway.Gateway
}

// GatewayStore persists through the remote api with the local mirror as fallback.
func GatewayStore(gw gateway.Gateway) Store {
	return gatewayStore{gateway: gw}
}

func (s gatewayStore) Save(ctx context.Context, req bookingDto.CreateBookingRequest) (Saved, error) {
	res, err := s.gateway.CreateBooking(ctx, req)
	if err != nil {
		return Saved{}, err
	}

	return Saved{Booking: res.Value, Offline: res.Offline()}, nil
}

type serviceStore struct {
	service bookingService.Booking
}

// ServiceStore persists straight into the booking service, for use inside the api.
func ServiceStore(service bookingService.Booking) Store {
	return serviceStore{service: service}
}

func (s serviceStore) Save(ctx context.Context, req bookingDto.CreateBookingRequest) (Saved, error) {
	booking, err := s.service.Create(ctx, req)
	if err != nil {
		return Saved{}, err
	}

	return Saved{Booking: booking}, nil
}

type mailerNotifier struct {
	mailer notification.Mailer
}

// MailerNotifier emails the guest for bookings kept offline. Bookings the api accepted
// are announced by the api itself.
func MailerNotifier(mailer notification.Mailer) Notifier {
	return mailerNotifier{mailer: mailer}
}

func (n mailerNotifier) Notify(ctx context.Context, saved Saved) error {
	if !saved.Offline {
		return nil
	}

	b := saved.Booking

	return n.mailer.Send(ctx, notification.BookingConfirmed{
		BookingID: b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Room:      b.Room,
		Checkin:   b.Checkin,
		Checkout:  b.Checkout,
		Price:     b.Price,
	})
}
