package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"grandhotel/config"
	"grandhotel/infras/jwt"
	"grandhotel/infras/otel"
	blacklistService "grandhotel/internal/domains/blacklist/service"
	"grandhotel/internal/domains/user/model"
	"grandhotel/internal/domains/user/model/dto"
	"grandhotel/internal/domains/user/repository"
	"grandhotel/shared"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"
	"grandhotel/shared/password"
	"grandhotel/shared/phone"

	"github.com/rs/zerolog/log"
)

const (
	msgPhoneRegistered    = "Phone number already registered"
	msgInvalidCredentials = "Invalid credentials"
)

// User is never updated or deleted once registered.
type User interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error)
	Count(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo       repository.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	blacklist  blacklistService.Blacklist
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, blacklist blacklistService.Blacklist) User {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		blacklist:  blacklist,
	}
}

func (s *serviceImpl) phoneFilter(number string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhone,
				Operator: gDto.FilterOperatorEq,
				Value:    number,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number := phone.Normalize(req.Phone, s.cfg.App.Hotel.PhoneRegion)

	if s.cfg.App.Users.BlockBlacklisted {
		if err = s.blacklist.Check(ctx, number); err != nil {
			return res, err
		}
	}

	exists, err := s.repo.Exist(ctx, s.phoneFilter(number))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString(msgPhoneRegistered)
	}

	credential, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(number, credential)

	if err = s.repo.Insert(ctx, user); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(msgPhoneRegistered)
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

// Login accepts bcrypt, salted sha256 and legacy plaintext credentials.
// Unknown phones and wrong passwords are indistinguishable to the caller.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number := phone.Normalize(req.Phone, s.cfg.App.Hotel.PhoneRegion)

	user, err := s.repo.Get(ctx, s.phoneFilter(number))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("phone", number).Msg("login attempt with unknown phone")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify password")

			return res, fmt.Errorf("failed to verify password: %w", err)
		}

		log.Warn().Str("phone", number).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Name, constant.RoleUser)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.User.FromModel(user)
	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err = s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return total, nil
}
