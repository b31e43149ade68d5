package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/internal/domains/inquiry/model"
	"grandhotel/internal/domains/inquiry/model/dto"
	"grandhotel/internal/domains/inquiry/repository"
	"grandhotel/shared"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Inquiry interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (dto.InquiryResponse, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.GetInquiriesResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Inquiry
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Inquiry, cfg *config.Config, otel otel.Otel) Inquiry {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquiry.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	inquiry := req.ToModel(user)

	if err = s.repo.Insert(ctx, inquiry); err != nil {
		log.Error().Err(err).Msg("failed to create inquiry")

		return res, fmt.Errorf("failed to create inquiry: %w", err)
	}

	res.FromModel(inquiry)

	return res, nil
}

// List returns inquiries newest first. Page and limit are optional; without them every row is returned.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquiry.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = constant.FieldCreatedAt
	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirDesc
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return res, fmt.Errorf("failed to count inquiries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, fmt.Errorf("failed to get inquiries: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquiry.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inquiry exists")

		return fmt.Errorf("failed to check if inquiry exists: %w", err)
	}

	if !exist {
		return failure.NotFound("inquiry not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete inquiry")

		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	return nil
}
