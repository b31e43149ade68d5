// Package gateway talks to the hotel api and falls back to the on-device mirror when
// the api cannot be reached. Offline writes stay in the mirror; nothing is replayed.
package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"time"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/infras/sqlite"
	adminDto "grandhotel/internal/domains/admin/model/dto"
	blacklistDto "grandhotel/internal/domains/blacklist/model/dto"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	couponDto "grandhotel/internal/domains/coupon/model/dto"
	inquiryDto "grandhotel/internal/domains/inquiry/model/dto"
	reviewDto "grandhotel/internal/domains/review/model/dto"
	roomDto "grandhotel/internal/domains/room/model/dto"
	userDto "grandhotel/internal/domains/user/model/dto"
	"grandhotel/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	ResourceBookings  = "bookings"
	ResourceInquiries = "inquiries"
	ResourceRooms     = "rooms"
	ResourceReviews   = "reviews"
	ResourceUsers     = "users"
	ResourceCoupons   = "coupons"
	ResourceBlacklist = "blacklist"
	ResourceAdmin     = "admin/login"
)

// Empty is the value of writes that answer with a bare success.
type Empty struct{}

type Gateway interface {
	Call(ctx context.Context, resource, method string, query url.Values, body any) (Envelope, error)

	ListBookings(ctx context.Context) (Result[[]bookingDto.BookingResponse], error)
	CreateBooking(ctx context.Context, req bookingDto.CreateBookingRequest) (Result[bookingDto.BookingResponse], error)
	UpdateBookingStatus(ctx context.Context, req bookingDto.UpdateStatusRequest) (Result[Empty], error)
	DeleteBooking(ctx context.Context, id string) (Result[Empty], error)

	ListInquiries(ctx context.Context) (Result[[]inquiryDto.InquiryResponse], error)
	CreateInquiry(ctx context.Context, req inquiryDto.CreateInquiryRequest) (Result[inquiryDto.InquiryResponse], error)
	DeleteInquiry(ctx context.Context, id string) (Result[Empty], error)

	ListRooms(ctx context.Context) (Result[[]roomDto.RoomResponse], error)
	CreateRoom(ctx context.Context, req roomDto.CreateRoomRequest) (Result[roomDto.RoomResponse], error)
	UpdateRoom(ctx context.Context, req roomDto.UpdateRoomRequest) (Result[Empty], error)
	DeleteRoom(ctx context.Context, id string) (Result[Empty], error)

	ListReviews(ctx context.Context) (Result[[]reviewDto.ReviewResponse], error)
	CreateReview(ctx context.Context, req reviewDto.CreateReviewRequest) (Result[reviewDto.ReviewResponse], error)

	RegisterUser(ctx context.Context, req userDto.RegisterRequest) (Result[userDto.UserResponse], error)
	LoginUser(ctx context.Context, req userDto.LoginRequest) (Result[userDto.UserResponse], error)
	CountUsers(ctx context.Context) (Result[int], error)

	ListCoupons(ctx context.Context) (Result[[]couponDto.CouponResponse], error)
	SaveCoupon(ctx context.Context, req couponDto.SaveCouponRequest) (Result[couponDto.CouponResponse], error)
	DeleteCoupon(ctx context.Context, code string) (Result[Empty], error)
	ValidateCoupon(ctx context.Context, code string) (Result[couponDto.CouponResponse], error)

	ListBlacklist(ctx context.Context) (Result[[]blacklistDto.EntryResponse], error)
	AddBlacklist(ctx context.Context, req blacklistDto.AddEntryRequest) (Result[blacklistDto.EntryResponse], error)
	RemoveBlacklist(ctx context.Context, phone string) (Result[Empty], error)

	LoginAdmin(ctx context.Context, req adminDto.LoginRequest) (Result[Session], error)
	Session(ctx context.Context) (Session, bool, error)
	Logout(ctx context.Context) error
}

type gatewayImpl struct {
	cfg     *config.Config
	otel    otel.Otel
	mirror  sqlite.Mirror
	client  *http.Client
	baseURL string
}

func New(cfg *config.Config, mirror sqlite.Mirror, otel otel.Otel) Gateway {
	return &gatewayImpl{
		cfg:    cfg,
		otel:   otel,
		mirror: mirror,
		client: &http.Client{
			Timeout: time.Duration(cfg.Gateway.TimeoutSeconds) * time.Second,
		},
		baseURL: cfg.Gateway.BaseURL,
	}
}

// list reads a collection from the api and refreshes the mirror with it. Rows written
// offline stay in the mirror until the api returns them. When the api is unreachable the
// last mirrored copy is returned, or defaults if none was stored.
func list[T any](ctx context.Context, g *gatewayImpl, resource, key, collection string, defaults []T, id func(T) string) (Result[[]T], error) {
	env, err := g.Call(ctx, resource, http.MethodGet, nil, nil)
	if err == nil {
		items := []T{}

		if err = env.Decode(key, &items); err == nil {
			if storeErr := refresh(ctx, g.mirror, collection, items, id); storeErr != nil {
				log.Warn().Err(storeErr).Str("collection", collection).Msg("failed to refresh local mirror")
			}

			return remote(items), nil
		}

		err = &NetworkError{Resource: resource, Method: http.MethodGet, Err: err}
	}

	netErr, ok := AsNetworkError(err)
	if !ok {
		return Result[[]T]{}, err
	}

	items, err := load(ctx, g.mirror, collection, defaults)
	if err != nil {
		return Result[[]T]{}, err
	}

	return local(items, netErr), nil
}

func pendingCollection(collection string) string {
	return collection + "Pending"
}

// track records id as written offline, so the next refresh of collection keeps it.
func track(ctx context.Context, mirror sqlite.Mirror, collection, id string) error {
	return mutate(ctx, mirror, pendingCollection(collection), nil, func(ids []string) []string {
		if slices.Contains(ids, id) {
			return ids
		}

		return append(ids, id)
	})
}

// refresh replaces the mirrored collection with fetched. Offline rows the api does not
// know yet are put first; once the api returns a row it is no longer pending.
func refresh[T any](ctx context.Context, mirror sqlite.Mirror, collection string, fetched []T, id func(T) string) error {
	pending, err := load[string](ctx, mirror, pendingCollection(collection), nil)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return mirror.Store(ctx, collection, fetched)
	}

	known := make(map[string]bool, len(fetched))
	for _, item := range fetched {
		known[id(item)] = true
	}

	mirrored, err := load[T](ctx, mirror, collection, nil)
	if err != nil {
		return err
	}

	items := make([]T, 0, len(fetched)+len(pending))
	for _, item := range mirrored {
		if !known[id(item)] && slices.Contains(pending, id(item)) {
			items = append(items, item)
		}
	}

	stillPending := slices.DeleteFunc(slices.Clone(pending), func(p string) bool { return known[p] })
	if err = mirror.Store(ctx, pendingCollection(collection), stillPending); err != nil {
		return err
	}

	return mirror.Store(ctx, collection, append(items, fetched...))
}

// write sends a mutation to the api. When the api is unreachable offline is applied
// to the mirror instead and its value is returned as a local result.
func write[T any](ctx context.Context, g *gatewayImpl, resource, method string, query url.Values, body any, key string, offline func() (T, error)) (Result[T], error) {
	var value T

	env, err := g.Call(ctx, resource, method, query, body)
	if err == nil {
		if key == constant.Empty {
			return remote(value), nil
		}

		if err = env.Decode(key, &value); err == nil {
			return remote(value), nil
		}

		err = &NetworkError{Resource: resource, Method: method, Err: err}
	}

	netErr, ok := AsNetworkError(err)
	if !ok {
		return Result[T]{}, err
	}

	value, err = offline()
	if err != nil {
		return Result[T]{}, err
	}

	log.Info().Str("resource", resource).Str("method", method).Msg("saved to local mirror (offline mode)")

	return local(value, netErr), nil
}

func load[T any](ctx context.Context, mirror sqlite.Mirror, collection string, defaults []T) ([]T, error) {
	items := []T{}

	found, err := mirror.Load(ctx, collection, &items)
	if err != nil {
		return nil, err
	}

	if !found && defaults != nil {
		return append(items, defaults...), nil
	}

	return items, nil
}

// mutate applies fn to a mirrored collection and stores the result.
func mutate[T any](ctx context.Context, mirror sqlite.Mirror, collection string, defaults []T, fn func([]T) []T) error {
	items, err := load(ctx, mirror, collection, defaults)
	if err != nil {
		return err
	}

	return mirror.Store(ctx, collection, fn(items))
}

func byID(id string) url.Values {
	return url.Values{constant.RequestParamID: []string{id}}
}
