package console_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/config"
	"grandhotel/infras/otel/mocks"
	"grandhotel/internal/console"
	"grandhotel/internal/domains/booking/model"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	couponDto "grandhotel/internal/domains/coupon/model/dto"
	"grandhotel/internal/domains/pricing"
	roomDto "grandhotel/internal/domains/room/model/dto"
	"grandhotel/internal/gateway"
	gatewayMocks "grandhotel/internal/gateway/mocks"
	"grandhotel/internal/workflow"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"
)

var catalog = []roomDto.RoomResponse{
	{ID: "room-1", Name: "Deluxe King Room", Price: 2500, PriceDisplay: "2,500", Amenities: []string{"King Bed", "City View"}},
	{ID: "room-2", Name: "Executive Suite", Price: 4500, PriceDisplay: "4,500", Amenities: []string{"Ocean View"}},
}

func newConsole(t *testing.T) (*console.Console, *gatewayMocks.MockGateway, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	gw := gatewayMocks.NewMockGateway(ctrl)

	cfg := &config.Config{}
	cfg.App.Hotel.Name = "GrandHotel"
	cfg.App.Hotel.UPIPayee = "8541030170@upi"
	cfg.App.Hotel.Currency = "INR"
	cfg.App.Hotel.QREndpoint = "https://api.qrserver.com/v1/create-qr-code/"

	clock := workflow.ClockFunc(func() time.Time {
		return time.Date(2024, time.October, 20, 9, 0, 0, 0, timezone.GetLocation())
	})

	engine := workflow.New(cfg, workflow.GatewayStore(gw), nil, clock, mocks.NewOtel())
	out := &bytes.Buffer{}

	return console.New(gw, engine, clock, out), gw, out
}

func TestConsole_Rooms(t *testing.T) {
	c, gw, out := newConsole(t)

	gw.EXPECT().ListRooms(gomock.Any()).Return(gateway.Result[[]roomDto.RoomResponse]{
		Value:  catalog,
		Source: gateway.SourceLocal,
		Err:    &gateway.NetworkError{Resource: gateway.ResourceRooms, StatusCode: http.StatusBadGateway},
	}, nil)

	err := c.Run(context.Background(), []string{"rooms", "-search", "ocean"})

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "offline")
	assert.Contains(t, out.String(), "Executive Suite")
	assert.NotContains(t, out.String(), "Deluxe King Room")
}

func TestConsole_Book(t *testing.T) {
	c, gw, out := newConsole(t)

	gw.EXPECT().ListRooms(gomock.Any()).Return(gateway.Result[[]roomDto.RoomResponse]{Value: catalog, Source: gateway.SourceRemote}, nil)
	gw.EXPECT().Session(gomock.Any()).Return(gateway.Session{Name: "Asha", Role: constant.RoleUser}, true, nil)
	gw.EXPECT().ValidateCoupon(gomock.Any(), "WELCOME10").Return(gateway.Result[couponDto.CouponResponse]{
		Value: couponDto.CouponResponse{Code: "WELCOME10", Discount: 10, Type: pricing.CouponPercent},
	}, nil)
	gw.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req bookingDto.CreateBookingRequest) (gateway.Result[bookingDto.BookingResponse], error) {
		assert.Equal(t, "Deluxe King Room", req.Room)
		assert.Equal(t, 5625, req.Price)

		return gateway.Result[bookingDto.BookingResponse]{
			Value:  bookingDto.BookingResponse{ID: "b-1", Status: model.StatusConfirmed, Price: req.Price},
			Source: gateway.SourceRemote,
		}, nil
	})

	err := c.Run(context.Background(), []string{
		"book", "-room", "deluxe king room", "-checkin", "2024-11-01", "-checkout", "2024-11-03",
		"-name", "Asha Verma", "-email", "asha@example.com", "-coupon", "WELCOME10",
	})

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "total ₹5,625")
	assert.Contains(t, out.String(), "upi://pay?pa=8541030170@upi&pn=GrandHotel&am=5625&cu=INR")
	assert.Contains(t, out.String(), "booking b-1 Confirmed")
}

func TestConsole_BookMissingFlags(t *testing.T) {
	c, _, _ := newConsole(t)

	err := c.Run(context.Background(), []string{"book", "-room", "room-1"})

	assert.Error(t, err)
	assert.Equal(t, "missing -checkin, -checkout", err.Error())
}

func TestConsole_Stats(t *testing.T) {
	tests := []struct {
		name    string
		session gateway.Session
		found   bool
		wantErr bool
	}{
		{name: "admin", session: gateway.Session{Role: constant.RoleAdmin}, found: true},
		{name: "guest", session: gateway.Session{Role: constant.RoleUser}, found: true, wantErr: true},
		{name: "signed out", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, gw, out := newConsole(t)

			gw.EXPECT().Session(gomock.Any()).Return(tt.session, tt.found, nil)

			if !tt.wantErr {
				gw.EXPECT().ListBookings(gomock.Any()).Return(gateway.Result[[]bookingDto.BookingResponse]{Value: []bookingDto.BookingResponse{
					{ID: "b-1", Room: "Deluxe King Room", Price: 5000},
					{ID: "b-2", Room: "Executive Suite", Price: 9000},
				}}, nil)
				gw.EXPECT().CountUsers(gomock.Any()).Return(gateway.Result[int]{Value: 4}, nil)
			}

			err := c.Run(context.Background(), []string{"stats"})

			if tt.wantErr {
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Contains(t, out.String(), "bookings: 2")
			assert.Contains(t, out.String(), "₹14,000")
			assert.Contains(t, out.String(), "users:    4")
		})
	}
}

func TestConsole_UnknownCommand(t *testing.T) {
	c, _, out := newConsole(t)

	err := c.Run(context.Background(), []string{"dance"})

	assert.ErrorIs(t, err, console.ErrUnknownCommand)
	assert.Contains(t, out.String(), "commands:")
}
