package model

import (
	"grandhotel/internal/domains/pricing"
	"grandhotel/shared/model"
)

const (
	TableName  = "coupons"
	EntityName = "coupon"

	FieldCode     = "code"
	FieldDiscount = "discount"
	FieldType     = "type"
)

type Coupon struct {
	Code     string             `db:"code"`
	Discount int                `db:"discount"`
	Type     pricing.CouponKind `db:"type"`
	model.Metadata
}
