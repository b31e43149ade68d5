package gateway

import (
	"context"
	"net/http"
	"net/url"
	"slices"

	"grandhotel/infras/sqlite"
	blacklistDto "grandhotel/internal/domains/blacklist/model/dto"
	couponDto "grandhotel/internal/domains/coupon/model/dto"
	"grandhotel/internal/domains/pricing"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/phone"
	"grandhotel/shared/validator"
)

const (
	fieldCoupons   = "coupons"
	fieldCoupon    = "coupon"
	fieldBlacklist = "blacklist"
	fieldEntry     = "entry"

	resourceCouponValidate = ResourceCoupons + "/validate"
)

// defaultCoupons apply until an admin saves the first coupon.
var defaultCoupons = []couponDto.CouponResponse{
	{Code: "WELCOME10", Discount: 10, Type: pricing.CouponPercent},
	{Code: "FLAT500", Discount: 500, Type: pricing.CouponFlat},
	{Code: "LUXURY20", Discount: 20, Type: pricing.CouponPercent},
	{Code: "GRAND15", Discount: 15, Type: pricing.CouponPercent},
}

func (g *gatewayImpl) ListCoupons(ctx context.Context) (Result[[]couponDto.CouponResponse], error) {
	return list(ctx, g, ResourceCoupons, fieldCoupons, sqlite.CollectionCoupons, defaultCoupons, couponCode)
}

// SaveCoupon creates the coupon or replaces the one with the same code.
func (g *gatewayImpl) SaveCoupon(ctx context.Context, req couponDto.SaveCouponRequest) (Result[couponDto.CouponResponse], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[couponDto.CouponResponse]{}, err
	}

	return write(ctx, g, ResourceCoupons, http.MethodPost, nil, req, fieldCoupon, func() (couponDto.CouponResponse, error) {
		var coupon couponDto.CouponResponse

		coupon.FromModel(req.ToModel(constant.ContextGuest))

		err := mutate(ctx, g.mirror, sqlite.CollectionCoupons, defaultCoupons, func(items []couponDto.CouponResponse) []couponDto.CouponResponse {
			items = slices.DeleteFunc(items, func(c couponDto.CouponResponse) bool { return c.Code == coupon.Code })

			return append(items, coupon)
		})

		if err == nil {
			err = track(ctx, g.mirror, sqlite.CollectionCoupons, coupon.Code)
		}

		return coupon, err
	})
}

func (g *gatewayImpl) DeleteCoupon(ctx context.Context, code string) (Result[Empty], error) {
	code = pricing.NormalizeCode(code)
	if code == constant.Empty {
		return Result[Empty]{}, failure.BadRequestFromString("Missing code")
	}

	query := url.Values{constant.RequestParamCode: []string{code}}

	return write(ctx, g, ResourceCoupons, http.MethodDelete, query, nil, constant.Empty, func() (Empty, error) {
		return Empty{}, mutate(ctx, g.mirror, sqlite.CollectionCoupons, defaultCoupons, func(items []couponDto.CouponResponse) []couponDto.CouponResponse {
			return slices.DeleteFunc(items, func(c couponDto.CouponResponse) bool { return c.Code == code })
		})
	})
}

// ValidateCoupon looks a code up. Offline the mirrored coupons are searched.
func (g *gatewayImpl) ValidateCoupon(ctx context.Context, code string) (Result[couponDto.CouponResponse], error) {
	code = pricing.NormalizeCode(code)
	if code == constant.Empty {
		return Result[couponDto.CouponResponse]{}, failure.BadRequestFromString("Missing code")
	}

	body := couponDto.ValidateCouponRequest{Code: code}

	return write(ctx, g, resourceCouponValidate, http.MethodPost, nil, body, fieldCoupon, func() (couponDto.CouponResponse, error) {
		coupons, err := load(ctx, g.mirror, sqlite.CollectionCoupons, defaultCoupons)
		if err != nil {
			return couponDto.CouponResponse{}, err
		}

		idx := slices.IndexFunc(coupons, func(c couponDto.CouponResponse) bool { return c.Code == code })
		if idx < 0 {
			return couponDto.CouponResponse{}, failure.NotFound("Invalid coupon code")
		}

		return coupons[idx], nil
	})
}

func (g *gatewayImpl) ListBlacklist(ctx context.Context) (Result[[]blacklistDto.EntryResponse], error) {
	return list[blacklistDto.EntryResponse](ctx, g, ResourceBlacklist, fieldBlacklist, sqlite.CollectionBlacklist, nil, entryPhone)
}

func (g *gatewayImpl) AddBlacklist(ctx context.Context, req blacklistDto.AddEntryRequest) (Result[blacklistDto.EntryResponse], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[blacklistDto.EntryResponse]{}, err
	}

	return write(ctx, g, ResourceBlacklist, http.MethodPost, nil, req, fieldEntry, func() (blacklistDto.EntryResponse, error) {
		var entry blacklistDto.EntryResponse

		entry.FromModel(req.ToModel(constant.ContextGuest, phone.Normalize(req.Phone, g.cfg.App.Hotel.PhoneRegion)))

		err := mutate(ctx, g.mirror, sqlite.CollectionBlacklist, nil, func(items []blacklistDto.EntryResponse) []blacklistDto.EntryResponse {
			items = slices.DeleteFunc(items, func(e blacklistDto.EntryResponse) bool { return e.Phone == entry.Phone })

			return append([]blacklistDto.EntryResponse{entry}, items...)
		})

		if err == nil {
			err = track(ctx, g.mirror, sqlite.CollectionBlacklist, entry.Phone)
		}

		return entry, err
	})
}

func (g *gatewayImpl) RemoveBlacklist(ctx context.Context, number string) (Result[Empty], error) {
	if number == constant.Empty {
		return Result[Empty]{}, failure.BadRequestFromString("Missing phone")
	}

	normalized := phone.Normalize(number, g.cfg.App.Hotel.PhoneRegion)
	query := url.Values{constant.RequestParamPhone: []string{normalized}}

	return write(ctx, g, ResourceBlacklist, http.MethodDelete, query, nil, constant.Empty, func() (Empty, error) {
		return Empty{}, mutate(ctx, g.mirror, sqlite.CollectionBlacklist, nil, func(items []blacklistDto.EntryResponse) []blacklistDto.EntryResponse {
			return slices.DeleteFunc(items, func(e blacklistDto.EntryResponse) bool { return e.Phone == normalized })
		})
	})
}

func couponCode(c couponDto.CouponResponse) string { return c.Code }

func entryPhone(e blacklistDto.EntryResponse) string { return e.Phone }
