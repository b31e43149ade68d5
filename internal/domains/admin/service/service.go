package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"fmt"

	"grandhotel/config"
	"grandhotel/infras/jwt"
	"grandhotel/infras/otel"
	"grandhotel/internal/domains/admin/model/dto"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	bookingService "grandhotel/internal/domains/booking/service"
	inquiryService "grandhotel/internal/domains/inquiry/service"
	"grandhotel/internal/domains/report"
	userService "grandhotel/internal/domains/user/service"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	adminSubject = "admin"
	adminName    = "Administrator"

	bookingsExportName  = "bookings_export.csv"
	inquiriesExportName = "inquiries_export.csv"
)

type Admin interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Stats(ctx context.Context, r report.Range) (report.Stats, error)
	ExportBookings(ctx context.Context) (dto.Export, error)
	ExportInquiries(ctx context.Context) (dto.Export, error)
}

type serviceImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	bookings   bookingService.Booking
	inquiries  inquiryService.Inquiry
	users      userService.User
}

func New(
	cfg *config.Config,
	otel otel.Otel,
	jwt jwt.JWT,
	bookings bookingService.Booking,
	inquiries inquiryService.Inquiry,
	users userService.User,
) Admin {
	return &serviceImpl{
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		bookings:   bookings,
		inquiries:  inquiries,
		users:      users,
	}
}

// Login trades the dashboard PIN for an admin token. An unset PIN disables the login.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Admin.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pin := s.cfg.App.Admin.PIN
	if pin == constant.Empty {
		return res, failure.Forbidden("admin login is disabled")
	}

	if subtle.ConstantTimeCompare([]byte(pin), []byte(req.PIN)) != 1 {
		log.Warn().Msg("admin login attempt with wrong pin")

		return res, failure.Unauthorized("Invalid PIN")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, adminSubject, adminName, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate admin tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context, r report.Range) (res report.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Admin.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("range", string(r))

	bookings, err := s.bookings.List(ctx, bookingDto.ListFilter{})
	if err != nil {
		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	users, err := s.users.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to count users: %w", err)
	}

	return report.ComputeStats(bookings, users, r, timezone.Now()), nil
}

func (s *serviceImpl) ExportBookings(ctx context.Context) (res dto.Export, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Admin.ExportBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.bookings.List(ctx, bookingDto.ListFilter{})
	if err != nil {
		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	if len(bookings) == 0 {
		return res, failure.NotFound("No data")
	}

	return dto.Export{FileName: bookingsExportName, Content: report.BookingsCSV(bookings), Rows: len(bookings)}, nil
}

func (s *serviceImpl) ExportInquiries(ctx context.Context) (res dto.Export, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Admin.ExportInquiries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	inquiries, err := s.inquiries.List(ctx, gDto.QueryParams{})
	if err != nil {
		return res, fmt.Errorf("failed to load inquiries: %w", err)
	}

	if len(inquiries.Inquiries) == 0 {
		return res, failure.NotFound("No data")
	}

	return dto.Export{
		FileName: inquiriesExportName,
		Content:  report.InquiriesCSV(inquiries.Inquiries),
		Rows:     len(inquiries.Inquiries),
	}, nil
}
