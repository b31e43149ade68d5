package quote

import (
	"net/http"
	"strings"

	"grandhotel/config"
	"grandhotel/infras/otel"
	couponService "grandhotel/internal/domains/coupon/service"
	"grandhotel/internal/domains/pricing"
	roomService "grandhotel/internal/domains/room/service"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Request prices a stay in a catalog room. The nightly rate always comes from the catalog.
type Request struct {
	RoomID   string `json:"room_id"  validate:"required"`
	Checkin  string `json:"checkin"  validate:"required,datetime=2006-01-02"`
	Checkout string `json:"checkout" validate:"required,datetime=2006-01-02"`
	Coupon   string `json:"coupon"   validate:"omitempty,max=50"`
}

type Payment struct {
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
	QRCodeURL string `json:"qr_code_url"`
}

type Handler struct {
	rooms      roomService.Room
	coupons    couponService.Coupon
	otel       otel.Otel
	payee      pricing.Payee
	qrEndpoint string
}

func New(cfg *config.Config, rooms roomService.Room, coupons couponService.Coupon, otel otel.Otel) Handler {
	return Handler{
		rooms:   rooms,
		coupons: coupons,
		otel:    otel,
		payee: pricing.Payee{
			VPA:      cfg.App.Hotel.UPIPayee,
			Name:     cfg.App.Hotel.Name,
			Currency: cfg.App.Hotel.Currency,
		},
		qrEndpoint: cfg.App.Hotel.QREndpoint,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quote", func(routerGroup chi.Router) {
		routerGroup.MethodNotAllowed(response.WithMethodNotAllowed)

		routerGroup.Post("/", handler.Quote)
	})
}

// Quote prices a stay and returns the UPI payment reference for the total.
// @Summary Price a stay
// @Description Seasonal multiplier of the check-in month, then the coupon if one is given.
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body Request true "Quote Request"
// @Success 200 {object} response.Envelope "success, quote, payment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/quote [post]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := Request{}

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

	var coupon *pricing.Coupon

	if strings.TrimSpace(req.Coupon) != constant.Empty {
		found, err := handler.coupons.Validate(ctx, req.Coupon)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		c := found.Pricing()
		coupon = &c
	}

	checkin, err := timezone.ParseDate(req.Checkin)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	checkout, err := timezone.ParseDate(req.Checkout)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	quote, err := pricing.Compute(room.Price, checkin, checkout, coupon)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	reference := pricing.PaymentReference(handler.payee, quote.Total)

	scope.SetAttributes(map[string]any{
		"room":   room.Name,
		"nights": quote.Nights,
		"total":  quote.Total,
	})

	response.WithEnvelope(w, http.StatusOK, response.Envelope{
		"room":  room.Name,
		"quote": quote,
		"payment": Payment{
			Amount:    quote.Total,
			Currency:  handler.payee.Currency,
			Reference: reference,
			QRCodeURL: pricing.QRCodeURL(handler.qrEndpoint, reference),
		},
	})
}
