package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"grandhotel/shared/timezone"
)

func TestUse(t *testing.T) {
	previous := timezone.GetLocation().String()
	t.Cleanup(func() { _ = timezone.Use(previous) })

	assert.NoError(t, timezone.Use("Asia/Kolkata"))
	assert.Equal(t, "Asia/Kolkata", timezone.GetLocation().String())

	assert.Error(t, timezone.Use("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Kolkata", timezone.GetLocation().String())
}

func TestParseDate(t *testing.T) {
	previous := timezone.GetLocation().String()
	t.Cleanup(func() { _ = timezone.Use(previous) })

	assert.NoError(t, timezone.Use("Asia/Kolkata"))

	got, err := timezone.ParseDate("2024-11-01")

	assert.NoError(t, err)
	assert.Equal(t, "2024-10-31T18:30:00Z", got.UTC().Format(time.RFC3339))

	_, err = timezone.ParseDate("01/11/2024")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	previous := timezone.GetLocation().String()
	t.Cleanup(func() { _ = timezone.Use(previous) })

	assert.NoError(t, timezone.Use("Asia/Kolkata"))

	// 20:00 UTC is already the next day in Kolkata.
	late := time.Date(2024, time.October, 20, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-10-21T00:00:00+05:30", timezone.StartOfDay(late).Format(time.RFC3339))
	assert.Equal(t, "2024-10-21 01:30", timezone.Format(late, "2006-01-02 15:04"))
}
