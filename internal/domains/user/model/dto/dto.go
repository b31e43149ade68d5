package dto

import (
	"strings"

	"grandhotel/infras/jwt"
	"grandhotel/internal/domains/user/model"
	"grandhotel/shared/constant"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"

	"github.com/google/uuid"
)

const (
	ActionRegister = "register"
	ActionLogin    = "login"
	ActionCount    = "count"
)

// ActionRequest is the envelope shared by every POST to the users resource.
type ActionRequest struct {
	Action   string `json:"action"   validate:"required,oneof=register login count"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (a ActionRequest) Register() RegisterRequest {
	return RegisterRequest{Name: a.Name, Phone: a.Phone, Password: a.Password}
}

func (a ActionRequest) Login() LoginRequest {
	return LoginRequest{Phone: a.Phone, Password: a.Password}
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Phone    string `json:"phone"    validate:"required,max=20,phone"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}

func (r *RegisterRequest) ToModel(phone, credential string) model.User {
	now := timezone.Now()

	return model.User{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(r.Name),
		Phone:    phone,
		Password: credential,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type LoginRequest struct {
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
