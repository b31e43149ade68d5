package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/internal/domains/blacklist/model"
	"grandhotel/internal/domains/blacklist/model/dto"
	"grandhotel/internal/domains/blacklist/repository"
	"grandhotel/shared"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"
	"grandhotel/shared/phone"
	"grandhotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Blacklist interface {
	List(ctx context.Context) ([]dto.EntryResponse, error)
	Add(ctx context.Context, req dto.AddEntryRequest) (dto.EntryResponse, error)
	Remove(ctx context.Context, phone string) error
	Check(ctx context.Context, phone string) error
}

type serviceImpl struct {
	repo repository.Blacklist
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Blacklist, cfg *config.Config, otel otel.Otel) Blacklist {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Blacklist.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get blacklist")

		return nil, fmt.Errorf("failed to get blacklist: %w", err)
	}

	return dto.FromModels(models), nil
}

// Add flags a phone. Re-adding an existing phone replaces its reason.
func (s *serviceImpl) Add(ctx context.Context, req dto.AddEntryRequest) (res dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Blacklist.Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	number := phone.Normalize(req.Phone, s.cfg.App.Hotel.PhoneRegion)
	entry := req.ToModel(user, number)
	filter := shared.FilterByID(number, model.FieldPhone, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check blacklist")

		return res, fmt.Errorf("failed to check blacklist: %w", err)
	}

	if exist {
		err = s.repo.Update(ctx, map[string]any{
			model.FieldReason:        entry.Reason,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, filter)
	} else {
		err = s.repo.Insert(ctx, entry)
	}

	if err != nil {
		log.Error().Err(err).Str("phone", number).Msg("failed to blacklist phone")

		return res, fmt.Errorf("failed to blacklist phone: %w", err)
	}

	res.FromModel(entry)

	return res, nil
}

func (s *serviceImpl) Remove(ctx context.Context, raw string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Blacklist.Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(phone.Normalize(raw, s.cfg.App.Hotel.PhoneRegion), model.FieldPhone, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check blacklist")

		return fmt.Errorf("failed to check blacklist: %w", err)
	}

	if !exist {
		return failure.NotFound("phone is not blacklisted") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove blacklist entry")

		return fmt.Errorf("failed to remove blacklist entry: %w", err)
	}

	return nil
}

// Check returns failure.GuestBlacklisted when the phone is on the list.
func (s *serviceImpl) Check(ctx context.Context, raw string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Blacklist.Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number := phone.Normalize(raw, s.cfg.App.Hotel.PhoneRegion)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(number, model.FieldPhone, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check blacklist")

		return fmt.Errorf("failed to check blacklist: %w", err)
	}

	if exist {
		log.Warn().Str("phone", number).Msg("blacklisted phone refused")

		return failure.GuestBlacklisted
	}

	return nil
}
