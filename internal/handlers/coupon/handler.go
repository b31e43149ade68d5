package coupon

import (
	"net/http"
	"strings"

	"grandhotel/infras/otel"
	"grandhotel/internal/domains/coupon/model/dto"
	"grandhotel/internal/domains/coupon/service"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Coupon
	otel    otel.Otel
}

func New(service service.Coupon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/coupons", func(routerGroup chi.Router) {
		routerGroup.MethodNotAllowed(response.WithMethodNotAllowed)

		routerGroup.Get("/", handler.GetCoupons)
		routerGroup.Post("/", handler.SaveCoupon)
		routerGroup.Delete("/", handler.DeleteCoupon)
		routerGroup.Post("/validate", handler.ValidateCoupon)
	})
}

// GetCoupons lists every coupon.
// @Summary Get coupons
// @Tags Coupon
// @Produce json
// @Success 200 {object} response.Envelope "success, coupons"
// @Failure 500 {object} response.Error
// @Router /api/coupons [get]
// @Security BearerAuth
func (handler *Handler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoupons")
	defer scope.End()

	coupons, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coupons")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "coupons", coupons)
}

// SaveCoupon creates a coupon or replaces the one with the same code.
// @Summary Save a coupon
// @Tags Coupon
// @Accept json
// @Produce json
// @Param request body dto.SaveCouponRequest true "Save Coupon Request"
// @Success 200 {object} response.Envelope "success, coupon"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/coupons [post]
// @Security BearerAuth
func (handler *Handler) SaveCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveCoupon")
	defer scope.End()

	req := dto.SaveCouponRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	coupon, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save coupon")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coupon saved " + coupon.Code)

	response.WithData(w, http.StatusOK, "coupon", coupon)
}

// DeleteCoupon removes a coupon by code.
// @Summary Delete a coupon
// @Tags Coupon
// @Produce json
// @Param code query string true "Coupon code"
// @Success 200 {object} response.Message "Coupon deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/coupons [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCoupon")
	defer scope.End()

	code := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamCode))
	if code == constant.Empty {
		err := failure.BadRequestFromString("Missing code")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, code); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete coupon")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Coupon deleted")
}

// ValidateCoupon looks a code up case-insensitively.
// @Summary Validate a coupon code
// @Tags Coupon
// @Accept json
// @Produce json
// @Param request body dto.ValidateCouponRequest true "Validate Coupon Request"
// @Success 200 {object} response.Envelope "success, coupon"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/coupons/validate [post]
func (handler *Handler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateCoupon")
	defer scope.End()

	req := dto.ValidateCouponRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	coupon, err := handler.service.Validate(ctx, req.Code)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "coupon", coupon)
}
