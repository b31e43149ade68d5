// Package timezone keeps the hotel's clock. Stay dates are calendar days in the hotel's
// zone (APP_TIMEZONE, an IANA name such as "Asia/Kolkata"), not in the server's.
package timezone

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"grandhotel/config"
	"grandhotel/shared/constant"
)

var location atomic.Pointer[time.Location]

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("no timezone configured, hotel dates use UTC")

		name = "UTC"
	}

	if err := Use(name); err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("failed to load timezone, hotel dates use UTC")
	}
}

// Use switches the hotel zone. On error the previous zone, or UTC, stays in place.
func Use(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}

	location.Store(loc)
	log.Debug().Str("timezone", loc.String()).Msg("hotel timezone set")

	return nil
}

func GetLocation() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}

// ParseDate reads a YYYY-MM-DD stay date as midnight in the hotel zone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateOnlyFormat, value, GetLocation())
}

// StartOfDay is midnight of t's calendar day in the hotel zone.
func StartOfDay(t time.Time) time.Time {
	t = t.In(GetLocation())

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, GetLocation())
}
