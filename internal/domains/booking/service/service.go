package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/infras/s3"
	"grandhotel/internal/domains/booking/model"
	"grandhotel/internal/domains/booking/model/dto"
	"grandhotel/internal/domains/booking/repository"
	"grandhotel/internal/domains/pricing"
	"grandhotel/internal/notification"
	"grandhotel/shared"
	"grandhotel/shared/base64"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	List(ctx context.Context, filter dto.ListFilter) ([]dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	otel      otel.Otel
	s3        s3.S3
	publisher notification.Publisher
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel, s3 s3.S3, publisher notification.Publisher) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		otel:      otel,
		s3:        s3,
		publisher: publisher,
	}
}

// Create stores a booking. Confirmed bookings trigger a confirmation event that never
// fails the request.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkin, checkout, err := req.Dates()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	nights, err := pricing.Nights(checkin, checkout)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	booking := req.ToModel(user, checkin, checkout, nights, constant.Empty)

	booking.GovtIDURL, err = s.storeGovtID(ctx, booking.ID, req.GovtIDData)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")
		s.discardGovtID(ctx, booking.GovtIDURL)

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	if booking.Status == model.StatusConfirmed {
		event := notification.BookingConfirmed{
			BookingID: res.ID,
			Name:      res.Name,
			Email:     res.Email,
			Room:      res.Room,
			Checkin:   res.Checkin,
			Checkout:  res.Checkout,
			Price:     res.Price,
		}

		go func() {
			if err := s.publisher.BookingConfirmed(context.WithoutCancel(ctx), event); err != nil {
				log.Warn().Err(err).Str("booking_id", event.BookingID).Msg("booking saved without confirmation event")
			}
		}()
	}

	return res, nil
}

// List returns bookings newest first.
func (s *serviceImpl) List(ctx context.Context, filter dto.ListFilter) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	models, err := s.repo.GetAll(ctx, params, filter.FilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("status", string(req.Status))

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = model.CheckTransition(current.Status, req.Status, s.cfg.App.Booking.StrictTransitions); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.discardGovtID(ctx, current.GovtIDURL)

	return nil
}

// storeGovtID uploads the identity document and returns its url, empty when none was sent.
func (s *serviceImpl) storeGovtID(ctx context.Context, bookingID, data string) (string, error) {
	data = strings.TrimSpace(data)
	if data == constant.Empty {
		return constant.Empty, nil
	}

	contentType, blob, err := base64.Decode(data)
	if err != nil {
		return constant.Empty, failure.BadRequest(fmt.Errorf("govt_id_data: %w", err))
	}

	url, err := s.s3.Upload(ctx, model.GovtIDDirectory, bookingID+base64.Extension(contentType), contentType, blob)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload govt id")

		return constant.Empty, fmt.Errorf("failed to upload govt id: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) discardGovtID(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	objectName := s.s3.GetObjectNameFromURL(url)

	if err := s.s3.DeleteFile(ctx, constant.Empty, objectName); err != nil {
		log.Warn().Err(err).Str("object", objectName).Msg("failed to delete govt id")
	}
}
