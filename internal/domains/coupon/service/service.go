package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/internal/domains/coupon/model"
	"grandhotel/internal/domains/coupon/model/dto"
	"grandhotel/internal/domains/coupon/repository"
	"grandhotel/internal/domains/pricing"
	"grandhotel/shared"
	"grandhotel/shared/cache"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCoupon    = "coupon:get"
	cacheGetAllCoupon = "coupon:gets"

	msgInvalidCoupon = "Invalid coupon code"
)

type Coupon interface {
	List(ctx context.Context) ([]dto.CouponResponse, error)
	Save(ctx context.Context, req dto.SaveCouponRequest) (dto.CouponResponse, error)
	Delete(ctx context.Context, code string) error
	Validate(ctx context.Context, code string) (dto.CouponResponse, error)
}

type serviceImpl struct {
	repo  repository.Coupon
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Coupon, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Coupon {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.CouponResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Coupon.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetAllCoupon, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllCoupon).Msg("cache hit for coupons")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldCode, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get coupons")

		return nil, fmt.Errorf("failed to get coupons: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllCoupon, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save coupons to cache")
		}
	}()

	return res, nil
}

// Save upserts by normalized code.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveCouponRequest) (res dto.CouponResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Coupon.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	coupon := req.ToModel(user)

	if coupon.Code == constant.Empty {
		return res, failure.BadRequestFromString("coupon code is required")
	}

	filter := shared.FilterByID(coupon.Code, model.FieldCode, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if coupon exists")

		return res, fmt.Errorf("failed to check if coupon exists: %w", err)
	}

	if exist {
		fields := map[string]any{
			model.FieldDiscount:      coupon.Discount,
			model.FieldType:          coupon.Type,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		err = s.repo.Update(ctx, fields, filter)
	} else {
		err = s.repo.Insert(ctx, coupon)
	}

	if err != nil {
		log.Error().Err(err).Str("code", coupon.Code).Msg("failed to save coupon")

		return res, fmt.Errorf("failed to save coupon: %w", err)
	}

	res.FromModel(coupon)

	s.invalidate(ctx, coupon.Code)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, code string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Coupon.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	code = pricing.NormalizeCode(code)
	filter := shared.FilterByID(code, model.FieldCode, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if coupon exists")

		return fmt.Errorf("failed to check if coupon exists: %w", err)
	}

	if !exist {
		return failure.NotFound("coupon not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete coupon")

		return fmt.Errorf("failed to delete coupon: %w", err)
	}

	s.invalidate(ctx, code)

	return nil
}

// Validate looks a code up case-insensitively. Unknown codes are a 404.
func (s *serviceImpl) Validate(ctx context.Context, code string) (res dto.CouponResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Coupon.Validate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	code = pricing.NormalizeCode(code)
	if code == constant.Empty {
		return res, failure.BadRequestFromString("coupon code is required")
	}

	cacheKey := shared.BuildCacheKey(cacheGetCoupon, code)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	coupon, err := s.repo.Get(ctx, shared.FilterByID(code, model.FieldCode, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get coupon")

		return res, fmt.Errorf("failed to get coupon: %w", err)
	}

	if coupon.Code == constant.Empty {
		return res, failure.NotFound(msgInvalidCoupon) // nolint:wrapcheck
	}

	res.FromModel(coupon)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save coupon to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, code string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCoupon, code)); err != nil {
			log.Error().Err(err).Msg("failed to delete coupon cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCoupon)
	}()
}
