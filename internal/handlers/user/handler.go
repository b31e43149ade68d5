package user

import (
	"net/http"

	"grandhotel/infras/otel"
	"grandhotel/internal/domains/user/model/dto"
	"grandhotel/internal/domains/user/service"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.MethodNotAllowed(response.WithMethodNotAllowed)

		routerGroup.Post("/", handler.Action)
		routerGroup.Post("/refresh-token", handler.RefreshToken)
	})
}

// Action dispatches on the action field: register, login or count.
// @Summary Register, login or count users
// @Description register returns 201 {user}; login returns {user, access_token, refresh_token, expires_in}; count returns {count}.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.ActionRequest true "User Action Request"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users [post]
func (handler *Handler) Action(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UserAction")
	defer scope.End()

	req := dto.ActionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		if failure.GetCode(err) == http.StatusBadRequest && req.Action != constant.Empty {
			err = failure.BadRequestFromString("Invalid action")
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("user.action", req.Action)

	r = r.WithContext(ctx)

	switch req.Action {
	case dto.ActionRegister:
		handler.register(w, r, req.Register())
	case dto.ActionLogin:
		handler.login(w, r, req.Login())
	case dto.ActionCount:
		handler.count(w, r)
	default:
		response.WithError(w, failure.BadRequestFromString("Invalid action"))
	}
}

func (handler *Handler) register(w http.ResponseWriter, r *http.Request, req dto.RegisterRequest) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate register request")

		response.WithError(w, err)

		return
	}

	user, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered " + user.ID)

	response.WithData(w, http.StatusCreated, "user", user)
}

func (handler *Handler) login(w http.ResponseWriter, r *http.Request, req dto.LoginRequest) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate login request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in")

	response.WithEnvelope(w, http.StatusOK, loginEnvelope(res))
}

func (handler *Handler) count(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CountUsers")
	defer scope.End()

	count, err := handler.service.Count(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count users")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "count", count)
}

// RefreshToken handles token refresh
// @Summary Refresh user token
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Envelope "success, user, access_token, refresh_token, expires_in"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/users/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token refreshed")

	response.WithEnvelope(w, http.StatusOK, loginEnvelope(res))
}

func loginEnvelope(res dto.LoginResponse) response.Envelope {
	return response.Envelope{
		"user":          res.User,
		"access_token":  res.AccessToken,
		"refresh_token": res.RefreshToken,
		"expires_in":    res.ExpiresIn,
	}
}
