package dto

import (
	"grandhotel/internal/domains/coupon/model"
	"grandhotel/internal/domains/pricing"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"
)

// SaveCouponRequest creates a coupon or replaces the one with the same code.
type SaveCouponRequest struct {
	Code     string             `json:"code"     validate:"required,max=50"`
	Discount int                `json:"discount" validate:"required,gt=0"`
	Type     pricing.CouponKind `json:"type"     validate:"required,oneof=percent flat"`
}

func (r *SaveCouponRequest) ToModel(user string) model.Coupon {
	now := timezone.Now()

	return model.Coupon{
		Code:     pricing.NormalizeCode(r.Code),
		Discount: r.Discount,
		Type:     r.Type,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ValidateCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type CouponResponse struct {
	Code     string             `json:"code"`
	Discount int                `json:"discount"`
	Type     pricing.CouponKind `json:"type"`
}

func (r *CouponResponse) FromModel(m model.Coupon) {
	r.Code = m.Code
	r.Discount = m.Discount
	r.Type = m.Type
}

func (r CouponResponse) Pricing() pricing.Coupon {
	return pricing.Coupon{Code: r.Code, Discount: r.Discount, Kind: r.Type}
}

func FromModels(models []model.Coupon) []CouponResponse {
	res := make([]CouponResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
