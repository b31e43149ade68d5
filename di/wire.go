//go:build wireinject
// +build wireinject

package di

import (
	"io"

	"grandhotel/config"
	"grandhotel/infras/jwt"
	"grandhotel/infras/kafka"
	"grandhotel/infras/otel"
	"grandhotel/infras/postgres"
	"grandhotel/infras/redis"
	"grandhotel/infras/s3"
	"grandhotel/internal/console"
	"grandhotel/internal/gateway"
	"grandhotel/internal/notification"
	"grandhotel/permissions"
	"grandhotel/shared/cache"
	"grandhotel/transport/http"
	"grandhotel/transport/http/middleware"
	"grandhotel/transport/http/router"

	"github.com/google/wire"

	adminService "grandhotel/internal/domains/admin/service"
	blacklistRepository "grandhotel/internal/domains/blacklist/repository"
	blacklistService "grandhotel/internal/domains/blacklist/service"
	bookingRepository "grandhotel/internal/domains/booking/repository"
	bookingService "grandhotel/internal/domains/booking/service"
	couponRepository "grandhotel/internal/domains/coupon/repository"
	couponService "grandhotel/internal/domains/coupon/service"
	inquiryRepository "grandhotel/internal/domains/inquiry/repository"
	inquiryService "grandhotel/internal/domains/inquiry/service"
	reviewRepository "grandhotel/internal/domains/review/repository"
	reviewService "grandhotel/internal/domains/review/service"
	roomRepository "grandhotel/internal/domains/room/repository"
	roomService "grandhotel/internal/domains/room/service"
	userRepository "grandhotel/internal/domains/user/repository"
	userService "grandhotel/internal/domains/user/service"

	adminHandler "grandhotel/internal/handlers/admin"
	blacklistHandler "grandhotel/internal/handlers/blacklist"
	bookingHandler "grandhotel/internal/handlers/booking"
	checkoutHandler "grandhotel/internal/handlers/checkout"
	couponHandler "grandhotel/internal/handlers/coupon"
	inquiryHandler "grandhotel/internal/handlers/inquiry"
	quoteHandler "grandhotel/internal/handlers/quote"
	reviewHandler "grandhotel/internal/handlers/review"
	roomHandler "grandhotel/internal/handlers/room"
	userHandler "grandhotel/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notification.NewPublisher,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var couponDomain = wire.NewSet(
	couponRepository.New,
	couponService.New,
)

var blacklistDomain = wire.NewSet(
	blacklistRepository.New,
	blacklistService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	inquiryDomain,
	reviewDomain,
	userDomain,
	couponDomain,
	blacklistDomain,
	adminService.New,
	newCheckoutEngine,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	inquiryHandler.New,
	reviewHandler.New,
	userHandler.New,
	couponHandler.New,
	blacklistHandler.New,
	adminHandler.New,
	quoteHandler.New,
	checkoutHandler.NewStore,
	checkoutHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeNotifier() *notification.Consumer {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		notification.NewEmailJS,
		notification.NewConsumer,
	)

	return &notification.Consumer{}
}

func InitializeConsole(out io.Writer) (*console.Console, func(), error) {
	wire.Build(
		config.Get,
		otel.New,
		newMirror,
		gateway.New,
		notification.NewEmailJS,
		newConsoleEngine,
		newConsole,
	)

	return &console.Console{}, nil, nil
}
