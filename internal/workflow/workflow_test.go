package workflow_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/config"
	"grandhotel/infras/otel/mocks"
	"grandhotel/internal/domains/booking/model"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	bookingMocks "grandhotel/internal/domains/booking/service/mocks"
	"grandhotel/internal/domains/pricing"
	"grandhotel/internal/gateway"
	gatewayMocks "grandhotel/internal/gateway/mocks"
	"grandhotel/internal/notification"
	notificationMocks "grandhotel/internal/notification/mocks"
	"grandhotel/internal/workflow"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"
)

var deluxe = workflow.Room{Name: "Deluxe King Room", Price: 2500}

var guest = workflow.Guest{Name: "Asha Verma", Email: "asha@example.com"}

func fixedClock() workflow.Clock {
	return workflow.ClockFunc(func() time.Time {
		return time.Date(2024, time.October, 20, 18, 30, 0, 0, timezone.GetLocation())
	})
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Hotel.Name = "GrandHotel"
	cfg.App.Hotel.UPIPayee = "8541030170@upi"
	cfg.App.Hotel.Currency = "INR"
	cfg.App.Hotel.QREndpoint = "https://api.qrserver.com/v1/create-qr-code/"

	return cfg
}

type recordingStore struct {
	saved []bookingDto.CreateBookingRequest
	err   error
}

func (s *recordingStore) Save(_ context.Context, req bookingDto.CreateBookingRequest) (workflow.Saved, error) {
	if s.err != nil {
		return workflow.Saved{}, s.err
	}

	s.saved = append(s.saved, req)

	return workflow.Saved{Booking: bookingDto.BookingResponse{ID: "b-1", Name: req.Name, Price: req.Price, Status: req.Status}}, nil
}

// pendingBooking walks a booking up to PaymentPending.
func pendingBooking(t *testing.T, engine *workflow.Engine, coupon *pricing.Coupon) *workflow.Booking {
	t.Helper()

	booking, err := engine.Start(workflow.Session{Coupon: coupon}, deluxe)
	assert.NoError(t, err)
	assert.NoError(t, booking.EnterDates("2024-11-01", "2024-11-03"))
	assert.NoError(t, booking.EnterGuest(guest))

	_, err = booking.ComputePrice()
	assert.NoError(t, err)

	_, err = booking.RequestPayment()
	assert.NoError(t, err)

	return booking
}

func TestBooking_HappyPath(t *testing.T) {
	store := &recordingStore{}
	engine := workflow.New(newConfig(), store, nil, fixedClock(), mocks.NewOtel())

	booking, err := engine.Start(workflow.Session{}, deluxe)
	assert.NoError(t, err)
	assert.Equal(t, workflow.StateRoomSelected, booking.State())

	assert.NoError(t, booking.EnterDates("2024-11-01", "2024-11-03"))
	assert.Equal(t, workflow.StateDatesEntered, booking.State())

	assert.NoError(t, booking.EnterGuest(guest))
	assert.Equal(t, workflow.StateGuestDetailsEntered, booking.State())

	assert.NoError(t, booking.ApplyCoupon(&pricing.Coupon{Code: "WELCOME10", Discount: 10, Kind: pricing.CouponPercent}))

	quote, err := booking.ComputePrice()
	assert.NoError(t, err)
	assert.Equal(t, workflow.StatePriceComputed, booking.State())
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 6250, quote.Subtotal)
	assert.Equal(t, 5625, quote.Total)

	payment, err := booking.RequestPayment()
	assert.NoError(t, err)
	assert.Equal(t, workflow.StatePaymentPending, booking.State())
	assert.Equal(t, 5625, payment.Amount)
	assert.Equal(t, "upi://pay?pa=8541030170@upi&pn=GrandHotel&am=5625&cu=INR", payment.Reference)
	assert.Contains(t, payment.QRCodeURL, "size=200x200")

	confirmed, err := booking.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, workflow.StateConfirmed, booking.State())
	assert.True(t, booking.State().Terminal())
	assert.Equal(t, "b-1", confirmed.ID)

	assert.Len(t, store.saved, 1)
	assert.Equal(t, 5625, store.saved[0].Price)
	assert.Equal(t, model.StatusConfirmed, store.saved[0].Status)
	assert.Equal(t, "2024-11-03", store.saved[0].Checkout)
}

func TestBooking_EnterDates(t *testing.T) {
	tests := []struct {
		name      string
		checkin   string
		checkout  string
		wantErr   error
		wantState workflow.State
	}{
		{name: "check-in today", checkin: "2024-10-20", checkout: "2024-10-21", wantState: workflow.StateDatesEntered},
		{name: "check-in in the past", checkin: "2024-10-19", checkout: "2024-10-21", wantErr: workflow.ErrInvalidDateRange, wantState: workflow.StateRoomSelected},
		{name: "check-out equals check-in", checkin: "2024-11-01", checkout: "2024-11-01", wantErr: workflow.ErrInvalidDateRange, wantState: workflow.StateRoomSelected},
		{name: "check-out before check-in", checkin: "2024-11-03", checkout: "2024-11-01", wantErr: workflow.ErrInvalidDateRange, wantState: workflow.StateRoomSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := workflow.New(newConfig(), &recordingStore{}, nil, fixedClock(), mocks.NewOtel())

			booking, err := engine.Start(workflow.Session{}, deluxe)
			assert.NoError(t, err)

			err = booking.EnterDates(tt.checkin, tt.checkout)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantState, booking.State())
		})
	}
}

func TestBooking_InvalidGuestFails(t *testing.T) {
	engine := workflow.New(newConfig(), &recordingStore{}, nil, fixedClock(), mocks.NewOtel())

	booking, err := engine.Start(workflow.Session{}, deluxe)
	assert.NoError(t, err)
	assert.NoError(t, booking.EnterDates("2024-11-01", "2024-11-03"))

	err = booking.EnterGuest(workflow.Guest{Name: "Asha"})
	assert.Error(t, err)
	assert.Equal(t, workflow.StateFailed, booking.State())
	assert.NotEmpty(t, booking.Draft().Reason)

	_, err = booking.ComputePrice()
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBooking_OutOfOrderSteps(t *testing.T) {
	engine := workflow.New(newConfig(), &recordingStore{}, nil, fixedClock(), mocks.NewOtel())

	booking, err := engine.Start(workflow.Session{}, deluxe)
	assert.NoError(t, err)

	_, err = booking.RequestPayment()
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	_, err = booking.Confirm(context.Background())
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	_, err = engine.Start(workflow.Session{}, workflow.Room{Name: "Free Room"})
	assert.Error(t, err)
}

func TestBooking_StoreFailureKeepsPaymentPending(t *testing.T) {
	store := &recordingStore{err: errors.New("database unavailable")}
	engine := workflow.New(newConfig(), store, nil, fixedClock(), mocks.NewOtel())

	booking := pendingBooking(t, engine, nil)

	_, err := booking.Confirm(context.Background())
	assert.Error(t, err)
	assert.Equal(t, workflow.StatePaymentPending, booking.State())
}

func TestBooking_ResumeFromDraft(t *testing.T) {
	store := &recordingStore{}
	engine := workflow.New(newConfig(), store, nil, fixedClock(), mocks.NewOtel())

	draft := pendingBooking(t, engine, &pricing.Coupon{Code: "FLAT500", Discount: 500, Kind: pricing.CouponFlat}).Draft()

	resumed := engine.Resume(draft)
	assert.Equal(t, workflow.StatePaymentPending, resumed.State())

	_, err := resumed.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5750, store.saved[0].Price)
}

func TestBooking_Abandon(t *testing.T) {
	engine := workflow.New(newConfig(), &recordingStore{}, nil, fixedClock(), mocks.NewOtel())

	booking := pendingBooking(t, engine, nil)
	booking.Abandon()

	draft := booking.Draft()
	assert.Equal(t, workflow.StateRoomSelected, draft.State)
	assert.Nil(t, draft.Quote)
	assert.Nil(t, draft.Payment)
	assert.Empty(t, draft.Guest.Email)
}

func TestGatewayStore_OfflineNotifiesGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewayMocks.NewMockGateway(ctrl)
	mailer := notificationMocks.NewMockMailer(ctrl)

	offline := gateway.Result[bookingDto.BookingResponse]{
		Value:  bookingDto.BookingResponse{ID: "local-1", Name: "Asha Verma", Email: "asha@example.com", Price: 5000},
		Source: gateway.SourceLocal,
		Err:    &gateway.NetworkError{Resource: gateway.ResourceBookings, Method: http.MethodPost, Err: errors.New("connection refused")},
	}

	gw.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(offline, nil)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event notification.BookingConfirmed) error {
		assert.Equal(t, "local-1", event.BookingID)

		return errors.New("emailjs unavailable")
	})

	engine := workflow.New(newConfig(), workflow.GatewayStore(gw), workflow.MailerNotifier(mailer), fixedClock(), mocks.NewOtel())
	booking := pendingBooking(t, engine, nil)

	confirmed, err := booking.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "local-1", confirmed.ID)
	assert.True(t, booking.Draft().Offline)
	assert.Equal(t, workflow.StateConfirmed, booking.State())

	time.Sleep(10 * time.Millisecond)
}

func TestServiceStore_RemoteSkipsMailer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBooking(ctrl)
	mailer := notificationMocks.NewMockMailer(ctrl)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bookingDto.BookingResponse{ID: "b-9"}, nil)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	engine := workflow.New(newConfig(), workflow.ServiceStore(svc), workflow.MailerNotifier(mailer), fixedClock(), mocks.NewOtel())
	booking := pendingBooking(t, engine, nil)

	confirmed, err := booking.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "b-9", confirmed.ID)
	assert.False(t, booking.Draft().Offline)

	time.Sleep(10 * time.Millisecond)
}
