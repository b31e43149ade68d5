package admin

import (
	"context"
	"net/http"

	"grandhotel/infras/otel"
	"grandhotel/internal/domains/admin/model/dto"
	"grandhotel/internal/domains/admin/service"
	"grandhotel/internal/domains/report"
	"grandhotel/shared/constant"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.MethodNotAllowed(response.WithMethodNotAllowed)

		routerGroup.Post("/login", handler.Login)
		routerGroup.Get("/stats", handler.Stats)
		routerGroup.Get("/export/bookings", handler.ExportBookings)
		routerGroup.Get("/export/inquiries", handler.ExportInquiries)
	})
}

// Login trades the dashboard PIN for an admin token.
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin Login Request"
// @Success 200 {object} response.Envelope "success, access_token, refresh_token, expires_in"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /api/admin/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminLogin")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login admin")

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, http.StatusOK, response.Envelope{
		"access_token":  res.AccessToken,
		"refresh_token": res.RefreshToken,
		"expires_in":    res.ExpiresIn,
	})
}

// Stats returns the dashboard totals.
// @Summary Dashboard stats
// @Tags Admin
// @Produce json
// @Param range query string false "all, today, week or month"
// @Success 200 {object} response.Envelope "success, range, total_bookings, total_revenue, total_users, revenue_by_room"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminStats")
	defer scope.End()

	dateRange, err := report.ParseRange(r.URL.Query().Get(constant.RequestParamRange))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	stats, err := handler.service.Stats(ctx, dateRange)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute stats")

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, http.StatusOK, response.Envelope{
		"range":           dateRange,
		"total_bookings":  stats.TotalBookings,
		"total_revenue":   stats.TotalRevenue,
		"total_users":     stats.TotalUsers,
		"revenue_by_room": stats.Revenue,
	})
}

// ExportBookings downloads every booking as CSV.
// @Summary Export bookings
// @Tags Admin
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} response.Error "No data"
// @Router /api/admin/export/bookings [get]
// @Security BearerAuth
func (handler *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	handler.export(w, r, "ExportBookings", handler.service.ExportBookings)
}

// ExportInquiries downloads every inquiry as CSV.
// @Summary Export inquiries
// @Tags Admin
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} response.Error "No data"
// @Router /api/admin/export/inquiries [get]
// @Security BearerAuth
func (handler *Handler) ExportInquiries(w http.ResponseWriter, r *http.Request) {
	handler.export(w, r, "ExportInquiries", handler.service.ExportInquiries)
}

func (handler *Handler) export(w http.ResponseWriter, r *http.Request, name string, build func(ctx context.Context) (dto.Export, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	export, err := build(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export " + name)

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("rows", export.Rows)

	response.WithCSV(w, export.FileName, export.Content)
}
