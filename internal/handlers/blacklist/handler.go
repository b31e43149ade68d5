package blacklist

import (
	"net/http"
	"strings"

	"grandhotel/infras/otel"
	"grandhotel/internal/domains/blacklist/model/dto"
	"grandhotel/internal/domains/blacklist/service"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Blacklist
	otel    otel.Otel
}

func New(service service.Blacklist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blacklist", func(routerGroup chi.Router) {
		routerGroup.MethodNotAllowed(response.WithMethodNotAllowed)

		routerGroup.Get("/", handler.GetEntries)
		routerGroup.Post("/", handler.AddEntry)
		routerGroup.Delete("/", handler.RemoveEntry)
	})
}

// GetEntries lists blocked phone numbers.
// @Summary Get blacklist
// @Tags Blacklist
// @Produce json
// @Success 200 {object} response.Envelope "success, blacklist"
// @Failure 500 {object} response.Error
// @Router /api/blacklist [get]
// @Security BearerAuth
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlacklist")
	defer scope.End()

	entries, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blacklist")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "blacklist", entries)
}

// AddEntry blocks a phone number. Adding a number twice replaces the reason.
// @Summary Add to blacklist
// @Tags Blacklist
// @Accept json
// @Produce json
// @Param request body dto.AddEntryRequest true "Add Entry Request"
// @Success 200 {object} response.Envelope "success, entry"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/blacklist [post]
// @Security BearerAuth
func (handler *Handler) AddEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddBlacklistEntry")
	defer scope.End()

	req := dto.AddEntryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	entry, err := handler.service.Add(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add blacklist entry")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "entry", entry)
}

// RemoveEntry unblocks a phone number.
// @Summary Remove from blacklist
// @Tags Blacklist
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {object} response.Message "Entry removed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/blacklist [delete]
// @Security BearerAuth
func (handler *Handler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveBlacklistEntry")
	defer scope.End()

	phone := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamPhone))
	if phone == constant.Empty {
		err := failure.BadRequestFromString("Missing phone")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Remove(ctx, phone); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove blacklist entry")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Entry removed")
}
