package gateway

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"grandhotel/infras/sqlite"
	adminDto "grandhotel/internal/domains/admin/model/dto"
	userDto "grandhotel/internal/domains/user/model/dto"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/password"
	"grandhotel/shared/phone"
	"grandhotel/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	adminID   = "admin"
	adminName = "Administrator"

	fieldUser        = "user"
	fieldAccessToken = "access_token"
	fieldCount       = "count"
)

// Session is the signed-in identity kept in the mirror between runs.
// AccessToken is empty for sessions opened offline.
type Session struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token,omitempty"`
}

// registeredUser is the single locally registered account used for offline login.
type registeredUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (g *gatewayImpl) Session(ctx context.Context) (session Session, found bool, err error) {
	found, err = g.mirror.Load(ctx, sqlite.CollectionSession, &session)

	return session, found, err
}

func (g *gatewayImpl) Logout(ctx context.Context) error {
	return g.mirror.Remove(ctx, sqlite.CollectionSession)
}

func (g *gatewayImpl) accessToken(ctx context.Context) string {
	session, found, err := g.Session(ctx)
	if err != nil || !found {
		return constant.Empty
	}

	return session.AccessToken
}

func (g *gatewayImpl) saveSession(ctx context.Context, session Session) error {
	return g.mirror.Store(ctx, sqlite.CollectionSession, session)
}

func (g *gatewayImpl) RegisterUser(ctx context.Context, req userDto.RegisterRequest) (Result[userDto.UserResponse], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[userDto.UserResponse]{}, err
	}

	body := userDto.ActionRequest{Action: userDto.ActionRegister, Name: req.Name, Phone: req.Phone, Password: req.Password}

	res, err := write(ctx, g, ResourceUsers, http.MethodPost, nil, body, fieldUser, func() (userDto.UserResponse, error) {
		credential, err := password.SaltedHash(req.Password)
		if err != nil {
			return userDto.UserResponse{}, err
		}

		user := registeredUser{
			ID:       uuid.NewString(),
			Name:     strings.TrimSpace(req.Name),
			Phone:    phone.Normalize(req.Phone, g.cfg.App.Hotel.PhoneRegion),
			Password: credential,
		}

		if err := g.mirror.Store(ctx, sqlite.CollectionRegisteredUser, user); err != nil {
			return userDto.UserResponse{}, err
		}

		return userDto.UserResponse{ID: user.ID, Name: user.Name, Phone: user.Phone}, nil
	})
	if err != nil {
		return res, err
	}

	user := res.Value
	if err := g.saveSession(ctx, Session{UserID: user.ID, Name: user.Name, Phone: user.Phone, Role: constant.RoleUser}); err != nil {
		log.Warn().Err(err).Msg("failed to save session")
	}

	return res, nil
}

// LoginUser signs in against the api. Offline, the credentials are checked against the
// last user registered on this device.
func (g *gatewayImpl) LoginUser(ctx context.Context, req userDto.LoginRequest) (Result[userDto.UserResponse], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[userDto.UserResponse]{}, err
	}

	body := userDto.ActionRequest{Action: userDto.ActionLogin, Phone: req.Phone, Password: req.Password}

	env, err := g.Call(ctx, ResourceUsers, http.MethodPost, nil, body)
	if err == nil {
		var (
			user  userDto.UserResponse
			token string
		)

		if err = env.Decode(fieldUser, &user); err == nil {
			_ = env.Decode(fieldAccessToken, &token)

			session := Session{UserID: user.ID, Name: user.Name, Phone: user.Phone, Role: constant.RoleUser, AccessToken: token}
			if err := g.saveSession(ctx, session); err != nil {
				log.Warn().Err(err).Msg("failed to save session")
			}

			return remote(user), nil
		}

		err = &NetworkError{Resource: ResourceUsers, Method: http.MethodPost, Err: err}
	}

	netErr, ok := AsNetworkError(err)
	if !ok {
		return Result[userDto.UserResponse]{}, err
	}

	var stored registeredUser

	found, err := g.mirror.Load(ctx, sqlite.CollectionRegisteredUser, &stored)
	if err != nil {
		return Result[userDto.UserResponse]{}, err
	}

	number := phone.Normalize(req.Phone, g.cfg.App.Hotel.PhoneRegion)
	if !found || stored.Phone != number || password.Verify(req.Password, stored.Password) != nil {
		return Result[userDto.UserResponse]{}, failure.Unauthorized("Invalid credentials")
	}

	user := userDto.UserResponse{ID: stored.ID, Name: stored.Name, Phone: stored.Phone}
	if err := g.saveSession(ctx, Session{UserID: user.ID, Name: user.Name, Phone: user.Phone, Role: constant.RoleUser}); err != nil {
		log.Warn().Err(err).Msg("failed to save session")
	}

	return local(user, netErr), nil
}

// CountUsers falls back to the last count the api reported.
func (g *gatewayImpl) CountUsers(ctx context.Context) (Result[int], error) {
	body := userDto.ActionRequest{Action: userDto.ActionCount}

	env, err := g.Call(ctx, ResourceUsers, http.MethodPost, nil, body)
	if err == nil {
		var count int

		if err = env.Decode(fieldCount, &count); err == nil {
			if storeErr := g.mirror.Store(ctx, sqlite.CollectionUserCount, count); storeErr != nil {
				log.Warn().Err(storeErr).Msg("failed to refresh local user count")
			}

			return remote(count), nil
		}

		err = &NetworkError{Resource: ResourceUsers, Method: http.MethodPost, Err: err}
	}

	netErr, ok := AsNetworkError(err)
	if !ok {
		return Result[int]{}, err
	}

	var count int

	if _, err := g.mirror.Load(ctx, sqlite.CollectionUserCount, &count); err != nil {
		return Result[int]{}, err
	}

	return local(count, netErr), nil
}

// LoginAdmin exchanges the dashboard PIN for an admin session. Offline, the PIN is
// compared with the configured one.
func (g *gatewayImpl) LoginAdmin(ctx context.Context, req adminDto.LoginRequest) (Result[Session], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[Session]{}, err
	}

	res, err := write(ctx, g, ResourceAdmin, http.MethodPost, nil, req, fieldAccessToken, func() (string, error) {
		pin := g.cfg.App.Admin.PIN
		if pin == constant.Empty {
			return constant.Empty, failure.Forbidden("admin login is disabled")
		}

		if subtle.ConstantTimeCompare([]byte(pin), []byte(req.PIN)) != 1 {
			return constant.Empty, failure.Unauthorized("Invalid PIN")
		}

		return constant.Empty, nil
	})
	if err != nil {
		return Result[Session]{}, err
	}

	session := Session{UserID: adminID, Name: adminName, Role: constant.RoleAdmin, AccessToken: res.Value}
	if err := g.saveSession(ctx, session); err != nil {
		log.Warn().Err(err).Msg("failed to save session")
	}

	return Result[Session]{Value: session, Source: res.Source, Err: res.Err}, nil
}
