package pricing_test

import (
	"errors"
	"testing"
	"time"

	"grandhotel/internal/domains/pricing"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		nightly  int
		checkin  time.Time
		checkout time.Time
		coupon   *pricing.Coupon
		want     pricing.Quote
		wantErr  error
	}{
		{
			name:     "peak season percent coupon",
			nightly:  2500,
			checkin:  date(2024, time.November, 1),
			checkout: date(2024, time.November, 3),
			coupon:   &pricing.Coupon{Code: "WELCOME10", Discount: 10, Kind: pricing.CouponPercent},
			want: pricing.Quote{
				NightlyPrice: 2500, Nights: 2, Season: pricing.SeasonPeak, Multiplier: 1.25,
				Subtotal: 6250, Discount: 625, Total: 5625, Coupon: "WELCOME10",
			},
		},
		{
			name:     "off season flat coupon",
			nightly:  2500,
			checkin:  date(2024, time.July, 1),
			checkout: date(2024, time.July, 2),
			coupon:   &pricing.Coupon{Code: "FLAT500", Discount: 500, Kind: pricing.CouponFlat},
			want: pricing.Quote{
				NightlyPrice: 2500, Nights: 1, Season: pricing.SeasonOff, Multiplier: 0.85,
				Subtotal: 2125, Discount: 500, Total: 1625, Coupon: "FLAT500",
			},
		},
		{
			name:     "flat coupon larger than subtotal clamps to zero",
			nightly:  1000,
			checkin:  date(2024, time.January, 10),
			checkout: date(2024, time.January, 11),
			coupon:   &pricing.Coupon{Code: "HUGE", Discount: 5000, Kind: pricing.CouponFlat},
			want: pricing.Quote{
				NightlyPrice: 1000, Nights: 1, Season: pricing.SeasonRegular, Multiplier: 1,
				Subtotal: 1000, Discount: 1000, Total: 0, Coupon: "HUGE",
			},
		},
		{
			name:     "no coupon",
			nightly:  8000,
			checkin:  date(2024, time.May, 1),
			checkout: date(2024, time.May, 4),
			want: pricing.Quote{
				NightlyPrice: 8000, Nights: 3, Season: pricing.SeasonRegular, Multiplier: 1,
				Subtotal: 24000, Total: 24000,
			},
		},
		{
			name:     "partial day rounds nights up",
			nightly:  4500,
			checkin:  date(2024, time.February, 1),
			checkout: date(2024, time.February, 2).Add(2 * time.Hour),
			want: pricing.Quote{
				NightlyPrice: 4500, Nights: 2, Season: pricing.SeasonRegular, Multiplier: 1,
				Subtotal: 9000, Total: 9000,
			},
		},
		{
			name:     "same day",
			nightly:  2500,
			checkin:  date(2024, time.November, 1),
			checkout: date(2024, time.November, 1),
			wantErr:  pricing.ErrInvalidRange,
		},
		{
			name:     "checkout before checkin",
			nightly:  2500,
			checkin:  date(2024, time.November, 3),
			checkout: date(2024, time.November, 1),
			wantErr:  pricing.ErrInvalidRange,
		},
		{
			name:     "zero price",
			nightly:  0,
			checkin:  date(2024, time.November, 1),
			checkout: date(2024, time.November, 2),
			wantErr:  pricing.ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Compute(tt.nightly, tt.checkin, tt.checkout, tt.coupon)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNights_AlwaysPositive(t *testing.T) {
	checkin := date(2024, time.March, 30)

	for hours := 1; hours <= 24*10; hours += 7 {
		nights, err := pricing.Nights(checkin, checkin.Add(time.Duration(hours)*time.Hour))
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, nights, 1)
		assert.Equal(t, (hours+23)/24, nights)
	}
}

func TestSeasonMultiplier(t *testing.T) {
	tests := map[time.Month]float64{
		time.January: 1, time.February: 1, time.March: 1.25, time.April: 1.25,
		time.May: 1, time.June: 0.85, time.July: 0.85, time.August: 0.85,
		time.September: 1, time.October: 1.25, time.November: 1.25, time.December: 1.25,
	}

	for month, want := range tests {
		assert.Equal(t, want, pricing.SeasonMultiplier(month), month.String())
	}
}

func TestApply(t *testing.T) {
	assert.Equal(t, 900, pricing.Apply(1000, &pricing.Coupon{Discount: 10, Kind: pricing.CouponPercent}))
	assert.Equal(t, 0, pricing.Apply(1000, &pricing.Coupon{Discount: 150, Kind: pricing.CouponPercent}))
	assert.Equal(t, 1000, pricing.Apply(1000, &pricing.Coupon{Discount: 10, Kind: "bogus"}))
	assert.Equal(t, 1000, pricing.Apply(1000, nil))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "WELCOME10", pricing.NormalizeCode("  welcome10 "))
}

func TestPaymentReference(t *testing.T) {
	payee := pricing.Payee{VPA: "8541030170@upi", Name: "GrandHotel", Currency: "INR"}

	ref := pricing.PaymentReference(payee, 5625)
	assert.Equal(t, "upi://pay?pa=8541030170@upi&pn=GrandHotel&am=5625&cu=INR", ref)

	qr := pricing.QRCodeURL("https://api.qrserver.com/v1/create-qr-code/", ref)
	assert.Equal(t,
		"https://api.qrserver.com/v1/create-qr-code/?data=upi%3A%2F%2Fpay%3Fpa%3D8541030170%40upi%26pn%3DGrandHotel%26am%3D5625%26cu%3DINR&size=200x200",
		qr)
}

func TestFormatAmount(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		500:     "500",
		2500:    "2,500",
		125000:  "125,000",
		1000000: "1,000,000",
		-4500:   "-4,500",
	}

	for amount, want := range tests {
		assert.Equal(t, want, pricing.FormatAmount(amount))
	}
}
