// Package phone normalizes guest phone numbers so they can be used as lookup keys.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const DefaultRegion = "IN"

// Normalize returns the E.164 form of raw, parsed against region first and then the
// default region. Input that cannot be parsed is returned trimmed.
func Normalize(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	regions := []string{region}
	if region != DefaultRegion {
		regions = append(regions, DefaultRegion)
	}

	for _, r := range regions {
		if r == "" {
			continue
		}

		parsed, err := phonenumbers.Parse(raw, r)
		if err == nil {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}

	return raw
}

// Valid reports whether raw is a dialable number in region or in the default region.
func Valid(raw, region string) bool {
	for _, r := range []string{region, DefaultRegion} {
		if r == "" {
			continue
		}

		parsed, err := phonenumbers.Parse(strings.TrimSpace(raw), r)
		if err == nil && phonenumbers.IsValidNumber(parsed) {
			return true
		}
	}

	return false
}
