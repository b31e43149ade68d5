package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/infras/otel/mocks"
	"grandhotel/internal/domains/user/model/dto"
	userMocks "grandhotel/internal/domains/user/service/mocks"
	"grandhotel/internal/handlers/user"
	"grandhotel/shared/failure"
)

func serve(svc *userMocks.MockUser, path, body string) *httptest.ResponseRecorder {
	handler := user.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMocks.NewMockUser(ctrl)

	svc.EXPECT().
		Register(gomock.Any(), dto.RegisterRequest{Name: "Ravi", Phone: "9876543210", Password: "secret"}).
		Return(dto.UserResponse{ID: "u-1", Name: "Ravi", Phone: "+919876543210"}, nil)

	rec := serve(svc, "/api/users", `{"action":"register","name":"Ravi","phone":"9876543210","password":"secret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "+919876543210", decode(t, rec)["user"].(map[string]any)["phone"])
}

func TestHandler_RegisterDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMocks.NewMockUser(ctrl)

	svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(dto.UserResponse{}, failure.BadRequestFromString("Phone already registered"))

	rec := serve(svc, "/api/users", `{"action":"register","name":"Ravi","phone":"9876543210","password":"secret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Phone already registered", decode(t, rec)["error"])
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMocks.NewMockUser(ctrl)

	svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Phone: "9876543210", Password: "secret"}).Return(dto.LoginResponse{
		User:         dto.UserResponse{ID: "u-1", Name: "Ravi"},
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    900,
	}, nil)

	rec := serve(svc, "/api/users", `{"action":"login","phone":"9876543210","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	res := decode(t, rec)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "access", res["access_token"])
	assert.Equal(t, "Ravi", res["user"].(map[string]any)["name"])
}

func TestHandler_Action(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{name: "unknown action", body: `{"action":"delete"}`, wantCode: http.StatusBadRequest, wantErr: "Invalid action"},
		{name: "missing password on login", body: `{"action":"login","phone":"9876543210"}`, wantCode: http.StatusBadRequest},
		{name: "short password on register", body: `{"action":"register","name":"Ravi","phone":"9876543210","password":"pw"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			rec := serve(userMocks.NewMockUser(ctrl), "/api/users", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decode(t, rec)["error"])
			}
		})
	}
}

func TestHandler_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMocks.NewMockUser(ctrl)

	svc.EXPECT().Count(gomock.Any()).Return(42, nil)

	rec := serve(svc, "/api/users", `{"action":"count"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 42, decode(t, rec)["count"], 0)
}
