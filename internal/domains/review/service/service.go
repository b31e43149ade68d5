package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/internal/domains/review/model/dto"
	"grandhotel/internal/domains/review/repository"
	"grandhotel/shared"
	"grandhotel/shared/cache"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheGetAllReview = "review:gets"

// Review has no update or delete; reviews are kept forever.
type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	List(ctx context.Context, params gDto.QueryParams) ([]dto.ReviewResponse, error)
}

type serviceImpl struct {
	repo  repository.Review
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Review, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Review.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	review := req.ToModel(user)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllReview)
	}()

	return res, nil
}

// List returns reviews newest first, cached per page.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res []dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Review.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = constant.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}
