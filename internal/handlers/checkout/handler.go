// Package checkout exposes the booking workflow step by step. The draft lives in a
// server-side session so a guest can leave and come back to the same booking.
package checkout

import (
	"encoding/json"
	"net/http"
	"strings"

	"grandhotel/infras/otel"
	couponService "grandhotel/internal/domains/coupon/service"
	roomService "grandhotel/internal/domains/room/service"
	"grandhotel/internal/workflow"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

var errNoDraft = failure.NotFound("no booking in progress")

type StartRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

type DatesRequest struct {
	Checkin  string `json:"checkin"  validate:"required"`
	Checkout string `json:"checkout" validate:"required"`
}

type CouponRequest struct {
	Code string `json:"code" validate:"omitempty,max=50"`
}

type Handler struct {
	engine  *workflow.Engine
	rooms   roomService.Room
	coupons couponService.Coupon
	store   sessions.Store
	otel    otel.Otel
}

func New(engine *workflow.Engine, rooms roomService.Room, coupons couponService.Coupon, store sessions.Store, otel otel.Otel) Handler {
	return Handler{
		engine:  engine,
		rooms:   rooms,
		coupons: coupons,
		store:   store,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkout", func(routerGroup chi.Router) {
		routerGroup.MethodNotAllowed(response.WithMethodNotAllowed)

		routerGroup.Get("/", handler.GetDraft)
		routerGroup.Delete("/", handler.Abandon)
		routerGroup.Post("/start", handler.Start)
		routerGroup.Post("/dates", handler.EnterDates)
		routerGroup.Post("/guest", handler.EnterGuest)
		routerGroup.Post("/coupon", handler.ApplyCoupon)
		routerGroup.Post("/price", handler.ComputePrice)
		routerGroup.Post("/payment", handler.RequestPayment)
		routerGroup.Post("/confirm", handler.Confirm)
	})
}

// Start opens a new booking for a catalog room, replacing any draft in progress.
// @Summary Start a booking
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body StartRequest true "Start Request"
// @Success 201 {object} response.Envelope "success, draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/checkout/start [post]
func (handler *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout.Start")
	defer scope.End()

	req := StartRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.rooms.Get(ctx, req.RoomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	userName, _ := ctx.Value(constant.ContextKeyUserName).(string)

	booking, err := handler.engine.Start(workflow.Session{UserName: userName}, workflow.Room{Name: room.Name, Price: room.Price})
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	session := handler.session(r)

	if err := handler.save(w, r, session, booking.Draft()); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checkout started for " + room.Name)

	response.WithData(w, http.StatusCreated, keyDraft, view(booking.Draft()))
}

// GetDraft returns the booking in progress.
// @Summary Get the booking in progress
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Envelope "success, draft"
// @Failure 404 {object} response.Error
// @Router /api/checkout [get]
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := readDraft(handler.session(r))
	if !ok {
		response.WithError(w, errNoDraft)

		return
	}

	response.WithData(w, http.StatusOK, keyDraft, view(draft))
}

// EnterDates records the stay. An invalid range sends the booking back to room selection.
// @Summary Enter stay dates
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body DatesRequest true "Dates Request"
// @Success 200 {object} response.Envelope "success, draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/checkout/dates [post]
func (handler *Handler) EnterDates(w http.ResponseWriter, r *http.Request) {
	req := DatesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	handler.step(w, r, "EnterDates", func(booking *workflow.Booking) (response.Envelope, error) {
		return nil, booking.EnterDates(strings.TrimSpace(req.Checkin), strings.TrimSpace(req.Checkout))
	})
}

// EnterGuest records the guest. Invalid details fail the booking.
// @Summary Enter guest details
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body workflow.Guest true "Guest"
// @Success 200 {object} response.Envelope "success, draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/checkout/guest [post]
func (handler *Handler) EnterGuest(w http.ResponseWriter, r *http.Request) {
	guest := workflow.Guest{}

	// Validation belongs to the workflow so that a bad guest fails the draft.
	if err := json.NewDecoder(r.Body).Decode(&guest); err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	handler.step(w, r, "EnterGuest", func(booking *workflow.Booking) (response.Envelope, error) {
		return nil, booking.EnterGuest(guest)
	})
}

// ApplyCoupon validates a code and attaches it to the booking. An empty code removes it.
// @Summary Apply a coupon
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body CouponRequest true "Coupon Request"
// @Success 200 {object} response.Envelope "success, draft"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/checkout/coupon [post]
func (handler *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	req := CouponRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	handler.step(w, r, "ApplyCoupon", func(booking *workflow.Booking) (response.Envelope, error) {
		if strings.TrimSpace(req.Code) == constant.Empty {
			return nil, booking.ApplyCoupon(nil)
		}

		found, err := handler.coupons.Validate(r.Context(), req.Code)
		if err != nil {
			return nil, err
		}

		coupon := found.Pricing()

		return response.Envelope{"coupon": found}, booking.ApplyCoupon(&coupon)
	})
}

// ComputePrice prices the stay.
// @Summary Compute the price
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Envelope "success, draft, quote"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/checkout/price [post]
func (handler *Handler) ComputePrice(w http.ResponseWriter, r *http.Request) {
	handler.step(w, r, "ComputePrice", func(booking *workflow.Booking) (response.Envelope, error) {
		quote, err := booking.ComputePrice()

		return response.Envelope{"quote": quote}, err
	})
}

// RequestPayment returns the UPI reference and QR code for the total.
// @Summary Request payment
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Envelope "success, draft, payment"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/checkout/payment [post]
func (handler *Handler) RequestPayment(w http.ResponseWriter, r *http.Request) {
	handler.step(w, r, "RequestPayment", func(booking *workflow.Booking) (response.Envelope, error) {
		payment, err := booking.RequestPayment()

		return response.Envelope{"payment": payment}, err
	})
}

// Confirm stores the booking once the guest reports payment and ends the checkout.
// @Summary Confirm the booking
// @Tags Checkout
// @Produce json
// @Success 201 {object} response.Envelope "success, booking"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/checkout/confirm [post]
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout.Confirm")
	defer scope.End()

	session := handler.session(r)

	draft, ok := readDraft(session)
	if !ok {
		response.WithError(w, errNoDraft)

		return
	}

	booking := handler.engine.Resume(draft)

	confirmed, err := booking.Confirm(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	delete(session.Values, keyDraft)

	if err := session.Save(r, w); err != nil {
		log.Warn().Err(err).Msg("failed to clear checkout session")
	}

	scope.AddEvent("Booking confirmed " + confirmed.ID)

	response.WithData(w, http.StatusCreated, "booking", confirmed)
}

// Abandon discards everything entered after the room selection.
// @Summary Abandon the booking
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Envelope "success, draft"
// @Failure 404 {object} response.Error
// @Router /api/checkout [delete]
func (handler *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	handler.step(w, r, "Abandon", func(booking *workflow.Booking) (response.Envelope, error) {
		booking.Abandon()

		return nil, nil
	})
}

// step runs one workflow transition on the session draft and stores the outcome, even
// when the transition failed, since failures may move the booking as well.
func (handler *Handler) step(w http.ResponseWriter, r *http.Request, name string, run func(booking *workflow.Booking) (response.Envelope, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout."+name)
	defer scope.End()

	r = r.WithContext(ctx)
	session := handler.session(r)

	draft, ok := readDraft(session)
	if !ok {
		response.WithError(w, errNoDraft)

		return
	}

	booking := handler.engine.Resume(draft)

	payload, runErr := run(booking)

	scope.SetAttribute("checkout.state", string(booking.State()))

	if err := handler.save(w, r, session, booking.Draft()); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if runErr != nil {
		scope.TraceError(runErr)
		log.Error().Err(runErr).Str("state", string(booking.State())).Msg("failed to " + name)

		response.WithError(w, runErr)

		return
	}

	if payload == nil {
		payload = response.Envelope{}
	}

	payload[keyDraft] = view(booking.Draft())

	response.WithEnvelope(w, http.StatusOK, payload)
}

func (handler *Handler) save(w http.ResponseWriter, r *http.Request, session *sessions.Session, draft workflow.Draft) error {
	if err := writeDraft(session, draft); err != nil {
		log.Error().Err(err).Msg("failed to encode checkout draft")

		return failure.InternalError(err)
	}

	if err := session.Save(r, w); err != nil {
		log.Error().Err(err).Msg("failed to save checkout session")

		return failure.InternalError(err)
	}

	return nil
}
