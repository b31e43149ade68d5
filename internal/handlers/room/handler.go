package room

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"grandhotel/infras/otel"
	"grandhotel/internal/domains/room/model/dto"
	"grandhotel/internal/domains/room/service"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	paramMinPrice = "min_price"
	paramMaxPrice = "max_price"
	paramAmenity  = "amenity"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.MethodNotAllowed(response.WithMethodNotAllowed)

		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Put("/", handler.UpdateRoom)
		routerGroup.Delete("/", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Image may be a url or a base64 data url; data urls are resized and uploaded.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Envelope "success, room"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created by user " + user)

	response.WithData(writer, http.StatusCreated, "room", room)
}

// GetRooms lists the catalog.
// @Summary Get rooms
// @Tags Room
// @Produce json
// @Param min_price query integer false "Minimum nightly price"
// @Param max_price query integer false "Maximum nightly price"
// @Param amenity query string false "Amenity the room must have"
// @Param search query string false "Matches room names and amenities"
// @Success 200 {object} response.Envelope "success, rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	filter, err := filterFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.List(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "rooms", rooms)
}

// GetRoomByID returns one room.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Envelope "success, room"
// @Failure 404 {object} response.Error
// @Router /api/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "room", room)
}

// UpdateRoom replaces a room.
// @Summary Update a room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Message "Room updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room
// @Tags Room
// @Produce json
// @Param id query string true "Room ID"
// @Success 200 {object} response.Message "Room deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/rooms [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
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
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted")
}

func filterFromRequest(r *http.Request) (dto.Filter, error) {
	query := r.URL.Query()

	filter := dto.Filter{
		Amenity: strings.TrimSpace(query.Get(paramAmenity)),
		Search:  strings.TrimSpace(query.Get(constant.RequestParamSearch)),
	}

	for param, dest := range map[string]*int{paramMinPrice: &filter.MinPrice, paramMaxPrice: &filter.MaxPrice} {
		raw := strings.TrimSpace(query.Get(param))
		if raw == constant.Empty {
			continue
		}

		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || value < 0 {
			return filter, failure.BadRequestFromString(fmt.Sprintf("%s must be a non-negative number", param))
		}

		*dest = value
	}

	return filter, nil
}
