// Package pricing computes the payable amount of a stay.
//
// The total is the nightly rate times the number of nights, scaled by the
// season of the check-in month and reduced by an optional coupon.
package pricing

import (
	"math"
	"net/http"
	"strings"
	"time"

	"grandhotel/shared/failure"
)

const day = 24 * time.Hour

var (
	ErrInvalidRange = &failure.Failure{Code: http.StatusBadRequest, Message: "check-out must be after check-in"}
	ErrInvalidPrice = &failure.Failure{Code: http.StatusBadRequest, Message: "nightly price must be positive"}
)

type CouponKind string

const (
	CouponPercent CouponKind = "percent"
	CouponFlat    CouponKind = "flat"
)

func (k CouponKind) Valid() bool {
	return k == CouponPercent || k == CouponFlat
}

type Coupon struct {
	Code     string     `json:"code"`
	Discount int        `json:"discount"`
	Kind     CouponKind `json:"type"`
}

// NormalizeCode upper-cases and trims a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type Season string

const (
	SeasonPeak    Season = "peak"
	SeasonOff     Season = "off"
	SeasonRegular Season = "regular"
)

// seasonPercent is the multiplier in hundredths so 2500 × 0.85 stays exact.
var seasonPercent = map[Season]int{
	SeasonPeak:    125,
	SeasonOff:     85,
	SeasonRegular: 100,
}

func SeasonOf(month time.Month) Season {
	switch month {
	case time.October, time.November, time.December, time.March, time.April:
		return SeasonPeak
	case time.June, time.July, time.August:
		return SeasonOff
	default:
		return SeasonRegular
	}
}

// SeasonMultiplier returns the price factor applied for stays starting in month.
func SeasonMultiplier(month time.Month) float64 {
	return float64(seasonPercent[SeasonOf(month)]) / 100
}

// Nights is the number of started days between checkin and checkout.
func Nights(checkin, checkout time.Time) (int, error) {
	if !checkout.After(checkin) {
		return 0, ErrInvalidRange
	}

	return int(math.Ceil(float64(checkout.Sub(checkin)) / float64(day))), nil
}

type Quote struct {
	NightlyPrice int     `json:"nightly_price"`
	Nights       int     `json:"nights"`
	Season       Season  `json:"season"`
	Multiplier   float64 `json:"multiplier"`
	Subtotal     int     `json:"subtotal"`
	Discount     int     `json:"discount"`
	Total        int     `json:"total"`
	Coupon       string  `json:"coupon,omitempty"`
}

// Compute prices a stay. coupon may be nil.
func Compute(nightlyPrice int, checkin, checkout time.Time, coupon *Coupon) (Quote, error) {
	if nightlyPrice <= 0 {
		return Quote{}, ErrInvalidPrice
	}

	nights, err := Nights(checkin, checkout)
	if err != nil {
		return Quote{}, err
	}

	season := SeasonOf(checkin.Month())
	subtotal := int(math.Round(float64(nightlyPrice*nights*seasonPercent[season]) / 100))

	quote := Quote{
		NightlyPrice: nightlyPrice,
		Nights:       nights,
		Season:       season,
		Multiplier:   SeasonMultiplier(checkin.Month()),
		Subtotal:     subtotal,
		Total:        Apply(subtotal, coupon),
	}

	if coupon != nil {
		quote.Coupon = coupon.Code
		quote.Discount = subtotal - quote.Total
	}

	return quote, nil
}

// Apply reduces subtotal by the coupon. The result never drops below zero.
func Apply(subtotal int, coupon *Coupon) int {
	if coupon == nil {
		return subtotal
	}

	var total int

	switch coupon.Kind {
	case CouponPercent:
		total = int(math.Round(float64(subtotal*(100-coupon.Discount)) / 100))
	case CouponFlat:
		total = subtotal - coupon.Discount
	default:
		total = subtotal
	}

	return max(0, total)
}
