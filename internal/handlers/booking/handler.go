package booking

import (
	"net/http"
	"strings"

	"grandhotel/infras/otel"
	"grandhotel/internal/domains/booking/model/dto"
	"grandhotel/internal/domains/booking/service"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	keyBooking  = "booking"
	keyBookings = "bookings"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.MethodNotAllowed(response.WithMethodNotAllowed)

		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Put("/", handler.UpdateStatus)
		routerGroup.Delete("/", handler.DeleteBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Store a booking. A govt_id_data data URL is uploaded and replaced by its object URL.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Envelope "success, booking"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created " + booking.ID)

	response.WithData(w, http.StatusCreated, keyBooking, booking)
}

// GetBookings lists bookings, newest first.
// @Summary Get bookings
// @Description Admins see every booking, optionally narrowed to one guest. Users only see bookings made under their own name.
// @Tags Booking
// @Produce json
// @Param name query string false "Guest name, case-insensitive"
// @Param email query string false "Guest email"
// @Success 200 {object} response.Envelope "success, bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	filter := dto.ListFilter{
		Name:  r.URL.Query().Get(constant.RequestParamName),
		Email: r.URL.Query().Get(constant.RequestParamEmail),
	}

	// Guests only ever see their own history.
	if role, _ := ctx.Value(constant.ContextKeyUserRole).(string); role == constant.RoleUser {
		name, _ := ctx.Value(constant.ContextKeyUserName).(string)
		filter = dto.ListFilter{Name: name}
	}

	bookings, err := handler.service.List(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, keyBookings, bookings)
}

// UpdateStatus overwrites the status of a booking.
// @Summary Update booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Status updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [put]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		if strings.TrimSpace(req.ID) == constant.Empty || req.Status == constant.Empty {
			err = failure.BadRequestFromString("Missing id or status")
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking status updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Status updated")
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id query string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
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
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted")
}
