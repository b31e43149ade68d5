// Package report derives dashboard figures and CSV exports from booking and inquiry listings.
// Every function is pure; callers pass the clock reading in.
package report

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	bookingDto "grandhotel/internal/domains/booking/model/dto"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"
)

type Range string

const (
	RangeAll   Range = "all"
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"

	unknownRoom = "Unknown"
	week        = 7 * 24 * time.Hour
)

// ParseRange accepts the dashboard filter values. Empty means all.
func ParseRange(raw string) (Range, error) {
	switch r := Range(strings.ToLower(strings.TrimSpace(raw))); r {
	case "":
		return RangeAll, nil
	case RangeAll, RangeToday, RangeWeek, RangeMonth:
		return r, nil
	default:
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown date range %q", raw))
	}
}

// Contains reports whether t falls in the range relative to now.
// today and month compare calendar fields in now's location; week is a rolling seven days.
func (r Range) Contains(t, now time.Time) bool {
	t = t.In(now.Location())

	switch r {
	case RangeToday:
		ty, tm, td := t.Date()
		ny, nm, nd := now.Date()

		return ty == ny && tm == nm && td == nd
	case RangeWeek:
		return !t.Before(now.Add(-week))
	case RangeMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	default:
		return true
	}
}

// BookedAt is the booking's creation time, or its check-in day when the creation time is missing.
func BookedAt(b bookingDto.BookingResponse) (time.Time, bool) {
	if b.CreatedAt != constant.Empty {
		if t, err := time.Parse(constant.DateFormat, b.CreatedAt); err == nil {
			return t, true
		}
	}

	if t, err := timezone.ParseDate(b.Checkin); err == nil {
		return t, true
	}

	return time.Time{}, false
}

// Filter keeps the bookings inside r. Bookings without a usable date only survive RangeAll.
func Filter(bookings []bookingDto.BookingResponse, r Range, now time.Time) []bookingDto.BookingResponse {
	if r == RangeAll || r == constant.Empty {
		return bookings
	}

	res := make([]bookingDto.BookingResponse, 0, len(bookings))

	for _, b := range bookings {
		at, ok := BookedAt(b)
		if ok && r.Contains(at, now) {
			res = append(res, b)
		}
	}

	return res
}

type Stats struct {
	TotalBookings int           `json:"total_bookings"`
	TotalRevenue  int           `json:"total_revenue"`
	TotalUsers    int           `json:"total_users"`
	Revenue       []RoomRevenue `json:"revenue_by_room"`
}

func ComputeStats(bookings []bookingDto.BookingResponse, totalUsers int, r Range, now time.Time) Stats {
	filtered := Filter(bookings, r, now)

	revenue := 0
	for _, b := range filtered {
		revenue += b.Price
	}

	return Stats{
		TotalBookings: len(filtered),
		TotalRevenue:  revenue,
		TotalUsers:    totalUsers,
		Revenue:       RevenueByRoom(filtered),
	}
}

type RoomRevenue struct {
	Room    string `json:"room"`
	Revenue int    `json:"revenue"`
}

// RevenueByRoom sums prices per room, ordered by room name.
func RevenueByRoom(bookings []bookingDto.BookingResponse) []RoomRevenue {
	totals := map[string]int{}

	for _, b := range bookings {
		room := strings.TrimSpace(b.Room)
		if room == constant.Empty {
			room = unknownRoom
		}

		totals[room] += b.Price
	}

	res := make([]RoomRevenue, 0, len(totals))
	for room, sum := range totals {
		res = append(res, RoomRevenue{Room: room, Revenue: sum})
	}

	slices.SortFunc(res, func(a, b RoomRevenue) int {
		return strings.Compare(a.Room, b.Room)
	})

	return res
}

// csvField wraps a value in quotes only when it contains a quote, doubling the quotes inside.
// Commas and newlines are written as is.
func csvField(value string) string {
	if !strings.Contains(value, `"`) {
		return value
	}

	return quoted(value)
}

func quoted(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func joinCSV(header []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(header, ","))

	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}

	return strings.Join(lines, "\n")
}

var bookingHeader = []string{"ID", "Name", "Email", "DOB", "GovtID", "Room", "Check-In", "Check-Out", "Price", "Status"}

// BookingsCSV renders one header line plus one line per booking.
func BookingsCSV(bookings []bookingDto.BookingResponse) string {
	rows := make([][]string, len(bookings))

	for i, b := range bookings {
		rows[i] = []string{
			csvField(b.ID),
			csvField(b.Name),
			csvField(b.Email),
			csvField(b.DOB),
			csvField(b.GovtIDName),
			csvField(b.Room),
			csvField(b.Checkin),
			csvField(b.Checkout),
			strconv.Itoa(b.Price),
			csvField(string(b.Status)),
		}
	}

	return joinCSV(bookingHeader, rows)
}
