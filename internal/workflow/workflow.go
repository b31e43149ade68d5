// Package workflow drives a single booking from room selection to a confirmed,
// persisted booking.
//
//	RoomSelected -> DatesEntered -> GuestDetailsEntered -> PriceComputed -> PaymentPending -> Confirmed
//
// Any step before payment that receives invalid guest input ends in Failed. A draft that
// is abandoned is simply dropped; nothing is persisted before Confirm.
package workflow

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/internal/domains/booking/model"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	"grandhotel/internal/domains/pricing"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"
	"grandhotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type State string

const (
	StateRoomSelected        State = "RoomSelected"
	StateDatesEntered        State = "DatesEntered"
	StateGuestDetailsEntered State = "GuestDetailsEntered"
	StatePriceComputed       State = "PriceComputed"
	StatePaymentPending      State = "PaymentPending"
	StateConfirmed           State = "Confirmed"
	StateFailed              State = "Failed"
)

func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateFailed
}

var ErrInvalidDateRange = &failure.Failure{
	Code:    http.StatusBadRequest,
	Message: "check-in must be today or later and check-out must be after check-in",
}

// Clock supplies "now" so date checks are deterministic under test.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock in the hotel timezone.
var SystemClock Clock = ClockFunc(timezone.Now)

type Room struct {
	Name  string `json:"name"  validate:"required"`
	Price int    `json:"price" validate:"gt=0"`
}

type Guest struct {
	Name       string `json:"name"         validate:"required,max=100"`
	Email      string `json:"email"        validate:"required,email,max=100"`
	DOB        string `json:"dob"          validate:"omitempty,datetime=2006-01-02"`
	GovtIDName string `json:"govt_id_name" validate:"omitempty,max=255"`
	GovtIDData string `json:"govt_id_data" validate:"omitempty,dataurl=image/png image/jpeg application/pdf,dataurlmax=5"`
}

// Session is the visitor context a booking is made in: who is signed in and which
// coupon they validated.
type Session struct {
	UserName  string          `json:"user_name,omitempty"`
	UserPhone string          `json:"user_phone,omitempty"`
	Coupon    *pricing.Coupon `json:"coupon,omitempty"`
}

type Payment struct {
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
	QRCodeURL string `json:"qr_code_url"`
}

// Draft is the serializable state of one booking in progress.
type Draft struct {
	State    State                       `json:"state"`
	Session  Session                     `json:"session"`
	Room     Room                        `json:"room"`
	Checkin  string                      `json:"checkin,omitempty"`
	Checkout string                      `json:"checkout,omitempty"`
	Guest    Guest                       `json:"guest"`
	Quote    *pricing.Quote              `json:"quote,omitempty"`
	Payment  *Payment                    `json:"payment,omitempty"`
	Booking  *bookingDto.BookingResponse `json:"booking,omitempty"`
	Offline  bool                        `json:"offline,omitempty"`
	Reason   string                      `json:"reason,omitempty"`
}

type Engine struct {
	pending    sync.WaitGroup
	store      Store
	notifier   Notifier
	clock      Clock
	otel       otel.Otel
	payee      pricing.Payee
	qrEndpoint string
}

func New(cfg *config.Config, store Store, notifier Notifier, clock Clock, otel otel.Otel) *Engine {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	if clock == nil {
		clock = SystemClock
	}

	return &Engine{
		store:    store,
		notifier: notifier,
		clock:    clock,
		otel:     otel,
		payee: pricing.Payee{
			VPA:      cfg.App.Hotel.UPIPayee,
			Name:     cfg.App.Hotel.Name,
			Currency: cfg.App.Hotel.Currency,
		},
		qrEndpoint: cfg.App.Hotel.QREndpoint,
	}
}

type Booking struct {
	engine *Engine
	draft  Draft
}

// Start opens a booking for room.
func (e *Engine) Start(session Session, room Room) (*Booking, error) {
	if err := validator.ValidateStruct(&room); err != nil {
		return nil, err
	}

	return &Booking{
		engine: e,
		draft:  Draft{State: StateRoomSelected, Session: session, Room: room},
	}, nil
}

// Resume continues a booking from a saved draft.
func (e *Engine) Resume(draft Draft) *Booking {
	return &Booking{engine: e, draft: draft}
}

func (b *Booking) State() State {
	return b.draft.State
}

func (b *Booking) Draft() Draft {
	return b.draft
}

func (b *Booking) expect(step string, states ...State) error {
	for _, s := range states {
		if b.draft.State == s {
			return nil
		}
	}

	return failure.Conflict(fmt.Sprintf("cannot %s a booking in state %s", step, b.draft.State))
}

// EnterDates records the stay. An invalid range leaves the booking in RoomSelected.
func (b *Booking) EnterDates(checkin, checkout string) error {
	if err := b.expect("enter dates for", StateRoomSelected, StateDatesEntered); err != nil {
		return err
	}

	in, err := timezone.ParseDate(checkin)
	if err != nil {
		return failure.BadRequest(err)
	}

	out, err := timezone.ParseDate(checkout)
	if err != nil {
		return failure.BadRequest(err)
	}

	today := timezone.StartOfDay(b.engine.clock.Now())

	if in.Before(today) || !out.After(in) {
		b.draft.State = StateRoomSelected
		b.draft.Checkin = constant.Empty
		b.draft.Checkout = constant.Empty

		return ErrInvalidDateRange
	}

	b.draft.Checkin = checkin
	b.draft.Checkout = checkout
	b.draft.State = StateDatesEntered

	return nil
}

// EnterGuest records the guest. Invalid details fail the booking.
func (b *Booking) EnterGuest(guest Guest) error {
	if err := b.expect("enter guest details for", StateDatesEntered); err != nil {
		return err
	}

	if err := validator.ValidateStruct(&guest); err != nil {
		b.draft.State = StateFailed
		b.draft.Reason = err.Error()

		return err
	}

	b.draft.Guest = guest
	b.draft.State = StateGuestDetailsEntered

	return nil
}

// ApplyCoupon sets or clears the session coupon. A computed price is refreshed.
func (b *Booking) ApplyCoupon(coupon *pricing.Coupon) error {
	if err := b.expect("apply a coupon to", StateRoomSelected, StateDatesEntered, StateGuestDetailsEntered, StatePriceComputed); err != nil {
		return err
	}

	b.draft.Session.Coupon = coupon

	if b.draft.State == StatePriceComputed {
		_, err := b.price()

		return err
	}

	return nil
}

func (b *Booking) ComputePrice() (pricing.Quote, error) {
	if err := b.expect("price", StateGuestDetailsEntered, StatePriceComputed); err != nil {
		return pricing.Quote{}, err
	}

	return b.price()
}

func (b *Booking) price() (pricing.Quote, error) {
	in, out, err := b.dates()
	if err != nil {
		return pricing.Quote{}, err
	}

	quote, err := pricing.Compute(b.draft.Room.Price, in, out, b.draft.Session.Coupon)
	if err != nil {
		return pricing.Quote{}, err
	}

	b.draft.Quote = &quote
	b.draft.State = StatePriceComputed

	return quote, nil
}

func (b *Booking) dates() (checkin, checkout time.Time, err error) {
	req := bookingDto.CreateBookingRequest{Checkin: b.draft.Checkin, Checkout: b.draft.Checkout}

	return req.Dates()
}

// RequestPayment produces the static UPI payment reference for the computed total.
// Payment itself is not verified.
func (b *Booking) RequestPayment() (Payment, error) {
	if err := b.expect("request payment for", StatePriceComputed); err != nil {
		return Payment{}, err
	}

	amount := b.draft.Quote.Total
	reference := pricing.PaymentReference(b.engine.payee, amount)

	payment := Payment{
		Amount:    amount,
		Currency:  b.engine.payee.Currency,
		Reference: reference,
		QRCodeURL: pricing.QRCodeURL(b.engine.qrEndpoint, reference),
	}

	b.draft.Payment = &payment
	b.draft.State = StatePaymentPending

	return payment, nil
}

// Request is the booking persisted on confirmation.
func (b *Booking) Request() bookingDto.CreateBookingRequest {
	guest := b.draft.Guest

	var total int
	if b.draft.Quote != nil {
		total = b.draft.Quote.Total
	}

	return bookingDto.CreateBookingRequest{
		Name:       guest.Name,
		Email:      guest.Email,
		DOB:        guest.DOB,
		GovtIDName: guest.GovtIDName,
		GovtIDData: guest.GovtIDData,
		Room:       b.draft.Room.Name,
		Checkin:    b.draft.Checkin,
		Checkout:   b.draft.Checkout,
		Price:      total,
		Status:     model.StatusConfirmed,
	}
}

// Confirm persists the booking once the guest reports payment. Notifications run in
// the background and never undo the confirmation. If the store rejects the booking it
// stays in PaymentPending.
func (b *Booking) Confirm(ctx context.Context) (booking bookingDto.BookingResponse, err error) {
	ctx, scope := b.engine.otel.NewScope(ctx, constant.OtelWorkflowScopeName, constant.OtelWorkflowScopeName+".Booking.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = b.expect("confirm", StatePaymentPending); err != nil {
		return booking, err
	}

	saved, err := b.engine.store.Save(ctx, b.Request())
	if err != nil {
		log.Error().Err(err).Msg("failed to persist confirmed booking")

		return booking, fmt.Errorf("failed to persist confirmed booking: %w", err)
	}

	b.draft.Booking = &saved.Booking
	b.draft.Offline = saved.Offline
	b.draft.State = StateConfirmed
	b.draft.Guest.GovtIDData = constant.Empty

	scope.SetAttribute("booking_id", saved.Booking.ID)

	b.engine.pending.Add(1)

	go func(ctx context.Context) {
		defer b.engine.pending.Done()

		if err := b.engine.notifier.Notify(ctx, saved); err != nil {
			log.Warn().Err(err).Str("booking_id", saved.Booking.ID).Msg("failed to send booking confirmation")
		}
	}(context.WithoutCancel(ctx))

	return saved.Booking, nil
}

// Wait blocks until every confirmation notification has been handled.
func (e *Engine) Wait() {
	e.pending.Wait()
}

// Abandon drops the draft.
func (b *Booking) Abandon() {
	b.draft = Draft{State: StateRoomSelected, Session: b.draft.Session, Room: b.draft.Room}
}
