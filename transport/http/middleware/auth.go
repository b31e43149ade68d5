package middleware

import (
	"context"
	"errors"
	"net/http"

	"grandhotel/config"
	"grandhotel/infras/jwt"
	"grandhotel/infras/otel"
	"grandhotel/permissions"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func internalCall(r *http.Request) bool {
	skip, _ := r.Context().Value(skipAuth).(bool)

	return skip
}

// route resolves the chi pattern of the request, e.g. "/api/rooms/{id}".
func route(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path); pattern != "" {
		return pattern
	}

	return r.URL.Path
}

func (m *authRoleImpl) lookup(r *http.Request) (permissions.Permission, bool, string) {
	path := route(r)
	if m.permission == nil {
		return permissions.Permission{}, false, path
	}

	permission, ok := m.permission.FindPermissions(path, r.Method)

	return permission, ok, path
}

// Auth validates the bearer token and stores the caller in the context. Public routes accept
// anonymous guests; when a guest is signed in anyway their identity is kept, so a booking
// made from the website is linked to the account.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		if internalCall(r) {
			next.ServeHTTP(w, r)

			return
		}

		permission, _, path := m.lookup(r)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     r.Method,
			"route.public":    permission.Public(),
		})

		header := r.Header.Get(constant.RequestHeaderAuthorization)

		if permission.Public() && header == constant.Empty {
			next.ServeHTTP(w, r)

			return
		}

		claims, err := m.authenticate(ctx, header)
		if err != nil {
			if permission.Public() {
				log.Debug().Err(err).Str("path", path).Msg("ignoring bad token on public route")
				next.ServeHTTP(w, r)

				return
			}

			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		ctx = context.WithValue(r.Context(), constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserName, claims.Name)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *authRoleImpl) authenticate(ctx context.Context, header string) (*jwt.Claims, error) {
	if header == constant.Empty {
		return nil, failure.Unauthorized("Missing authorization header")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			return nil, failure.Unauthorized("Token has expired")
		case errors.Is(err, jwt.ErrInvalidToken):
			return nil, failure.Unauthorized("Invalid token")
		case errors.Is(err, jwt.ErrInvalidClaim):
			return nil, failure.Unauthorized("Invalid token claims")
		default:
			return nil, failure.Unauthorized("Token validation failed")
		}
	}

	if claims.UserID == constant.Empty || claims.Role == constant.Empty {
		log.Error().Str("token_id", claims.TokenID).Msg("JWT claims: UserID or Role is empty")

		return nil, failure.Unauthorized("Invalid token claims")
	}

	return claims, nil
}

// RBAC checks the caller's role against the route table. It runs after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if internalCall(r) {
			next.ServeHTTP(w, r)

			return
		}

		if m.permission == nil {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(w, failure.ForbiddenError)

			return
		}

		permission, listed, path := m.lookup(r)

		if m.permission.Skip || permission.Public() {
			next.ServeHTTP(w, r)

			return
		}

		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

		if !listed {
			log.Warn().Str("path", path).Str("method", r.Method).Msg("route missing from permissions table")
		}

		if !listed || !permission.Allows(role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
			})
			scope.TraceError(failure.ForbiddenError)
			response.WithError(w, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIKey lets internal callers (the notifier, cron jobs) through without a user token.
// A wrong key is refused rather than downgraded to a guest.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		key := r.Header.Get(constant.RequestHeaderAPIKey)

		if key == constant.Empty {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), skipAuth, false)))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || key != m.cfg.App.APIKey {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(w, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), skipAuth, true)))
	})
}
