package inquiry

import (
	"net/http"
	"strings"

	"grandhotel/infras/otel"
	"grandhotel/internal/domains/inquiry/model/dto"
	"grandhotel/internal/domains/inquiry/service"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.MethodNotAllowed(response.WithMethodNotAllowed)

		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Post("/", handler.CreateInquiry)
		routerGroup.Delete("/", handler.DeleteInquiry)
	})
}

// CreateInquiry stores a message sent from the contact form.
// @Summary Send an inquiry
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Create Inquiry Request"
// @Success 201 {object} response.Envelope "success, inquiry"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/inquiries [post]
func (handler *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	inquiry, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusCreated, "inquiry", inquiry)
}

// GetInquiries lists inquiries, newest first.
// @Summary Get inquiries
// @Tags Inquiry
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetInquiriesResponse
// @Failure 500 {object} response.Error
// @Router /api/inquiries [get]
// @Security BearerAuth
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	queryParams := gDto.ParseQueryParams(r, gDto.DefaultQueryParams())

	res, err := handler.service.List(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, http.StatusOK, response.Envelope{
		"inquiries":  res.Inquiries,
		"total_page": res.TotalPage,
		"total_data": res.TotalData,
	})
}

// DeleteInquiry deletes an inquiry by its ID.
// @Summary Delete an inquiry
// @Tags Inquiry
// @Produce json
// @Param id query string true "Inquiry ID"
// @Success 200 {object} response.Message "Inquiry deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/inquiries [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInquiry")
	defer scope.End()

	id := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamID))
	if id == constant.Empty {
		err := failure.BadRequestFromString("Missing id")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inquiry")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Inquiry deleted")
}
