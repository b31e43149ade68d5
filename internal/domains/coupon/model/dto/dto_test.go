package dto_test

import (
	"testing"

	"grandhotel/internal/domains/coupon/model/dto"
	"grandhotel/internal/domains/pricing"

	"github.com/stretchr/testify/assert"
)

func TestSaveCouponRequest_ToModel(t *testing.T) {
	req := dto.SaveCouponRequest{Code: " summer25 ", Discount: 25, Type: pricing.CouponPercent}

	coupon := req.ToModel("admin")

	assert.Equal(t, "SUMMER25", coupon.Code)
	assert.Equal(t, 25, coupon.Discount)
	assert.Equal(t, pricing.CouponPercent, coupon.Type)
	assert.Equal(t, "admin", coupon.CreatedBy)

	var res dto.CouponResponse
	res.FromModel(coupon)

	assert.Equal(t, pricing.Coupon{Code: "SUMMER25", Discount: 25, Kind: pricing.CouponPercent}, res.Pricing())
}
