package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/config"
	"grandhotel/infras/jwt"
	jwtMocks "grandhotel/infras/jwt/mocks"
	"grandhotel/infras/otel/mocks"
	blacklistMocks "grandhotel/internal/domains/blacklist/service/mocks"
	userMocks "grandhotel/internal/domains/user/mocks"
	"grandhotel/internal/domains/user/model"
	"grandhotel/internal/domains/user/model/dto"
	"grandhotel/internal/domains/user/service"
	"grandhotel/shared/failure"
	"grandhotel/shared/password"
)

type fixture struct {
	repo      *userMocks.MockUser
	jwt       *jwtMocks.MockJWT
	blacklist *blacklistMocks.MockBlacklist
	svc       service.User
}

func newFixture(t *testing.T, opts ...func(*config.Config)) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Hotel.PhoneRegion = "IN"

	for _, opt := range opts {
		opt(cfg)
	}

	f := fixture{
		repo:      userMocks.NewMockUser(ctrl),
		jwt:       jwtMocks.NewMockJWT(ctrl),
		blacklist: blacklistMocks.NewMockBlacklist(ctrl),
	}
	f.svc = service.New(f.repo, cfg, mocks.NewOtel(), f.jwt, f.blacklist)

	return f
}

func TestUserService_Register(t *testing.T) {
	req := dto.RegisterRequest{Name: "Ravi", Phone: "98765 43210", Password: "secret"}

	t.Run("stores normalized phone and bcrypt credential", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) error {
			assert.Equal(t, "+919876543210", u.Phone)
			assert.Equal(t, password.KindBcrypt, password.KindOf(u.Password))
			assert.NoError(t, password.Verify("secret", u.Password))

			return nil
		})

		res, err := f.svc.Register(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Ravi", res.Name)
		assert.Equal(t, "+919876543210", res.Phone)
	})

	t.Run("blacklisted phone registers by default", func(t *testing.T) {
		f := newFixture(t)

		f.blacklist.EXPECT().Check(gomock.Any(), gomock.Any()).Times(0)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Register(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("blacklisted phone refused when blocking is on", func(t *testing.T) {
		f := newFixture(t, func(cfg *config.Config) { cfg.App.Users.BlockBlacklisted = true })

		f.blacklist.EXPECT().Check(gomock.Any(), "+919876543210").Return(failure.GuestBlacklisted)

		_, err := f.svc.Register(context.Background(), req)

		assert.ErrorIs(t, err, failure.GuestBlacklisted)
	})

	t.Run("phone already registered", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(context.Background(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "Phone number already registered")
	})

	t.Run("concurrent registration hits unique index", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})

		_, err := f.svc.Register(context.Background(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestUserService_Login(t *testing.T) {
	salted, err := password.SaltedHash("letmein")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		stored   model.User
		password string
		wantCode int
	}{
		{
			name:     "legacy plaintext match",
			stored:   model.User{ID: "u1", Name: "Ravi", Phone: "+919876543210", Password: "letmein"},
			password: "letmein",
		},
		{
			name:     "legacy plaintext mismatch",
			stored:   model.User{ID: "u1", Phone: "+919876543210", Password: "letmein"},
			password: "letmeout",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "salted hash match",
			stored:   model.User{ID: "u1", Phone: "+919876543210", Password: salted},
			password: "letmein",
		},
		{
			name:     "salted hash mismatch",
			stored:   model.User{ID: "u1", Phone: "+919876543210", Password: salted},
			password: "LETMEIN",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "legacy plaintext with bcrypt prefix mismatch",
			stored:   model.User{ID: "u1", Phone: "+919876543210", Password: "$2letmein"},
			password: "letmein",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "unknown phone",
			stored:   model.User{},
			password: "letmein",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.stored, nil)

			if tt.wantCode == 0 {
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), tt.stored.ID, tt.stored.Name, "user").
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)
			}

			res, err := f.svc.Login(context.Background(), dto.LoginRequest{Phone: "9876543210", Password: tt.password})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "u1", res.User.ID)
			assert.Equal(t, "access", res.AccessToken)
		})
	}
}

func TestUserService_RefreshToken(t *testing.T) {
	f := newFixture(t)

	f.jwt.EXPECT().RefreshTokens(gomock.Any(), "good").Return(&jwt.TokenPair{AccessToken: "new"}, nil)
	f.jwt.EXPECT().RefreshTokens(gomock.Any(), "bad").Return(nil, jwt.ErrInvalidToken)

	res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good"})
	assert.NoError(t, err)
	assert.Equal(t, "new", res.AccessToken)

	_, err = f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestUserService_Count(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(42, nil)

	total, err := f.svc.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, total)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

	_, err = f.svc.Count(context.Background())
	assert.Error(t, err)
}

func TestUserService_CountTracesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMocks.NewMockUser(ctrl)
	recorder := mocks.NewRecorder()

	svc := service.New(repo, &config.Config{}, recorder, jwtMocks.NewMockJWT(ctrl), blacklistMocks.NewMockBlacklist(ctrl))

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	_, err := svc.Count(context.Background())

	assert.ErrorContains(t, err, "failed to count users: db down")

	if assert.Len(t, recorder.Errors(), 1) {
		assert.Equal(t, err, recorder.Errors()[0])
	}
}
