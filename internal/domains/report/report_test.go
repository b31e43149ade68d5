package report_test

import (
	"strings"
	"testing"
	"time"

	bookingModel "grandhotel/internal/domains/booking/model"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	inquiryDto "grandhotel/internal/domains/inquiry/model/dto"
	"grandhotel/internal/domains/report"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC)

func bookings() []bookingDto.BookingResponse {
	return []bookingDto.BookingResponse{
		{ID: "b1", Name: "Asha", Room: "Deluxe King Room", Price: 5625, Status: bookingModel.StatusConfirmed, Checkin: "2024-11-20", CreatedAt: "2024-11-15T08:00:00Z"},
		{ID: "b2", Name: "Ravi", Room: "Executive Suite", Price: 4500, Status: bookingModel.StatusCheckedIn, Checkin: "2024-11-10", CreatedAt: "2024-11-10T08:00:00Z"},
		{ID: "b3", Name: "Meera", Room: "Deluxe King Room", Price: 2500, Status: bookingModel.StatusCheckedOut, Checkin: "2024-11-02"},
		{ID: "b4", Name: "Kabir", Room: "", Price: 1000, Status: bookingModel.StatusCancelled, Checkin: "2024-09-01", CreatedAt: "2024-09-01T08:00:00Z"},
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		raw     string
		want    report.Range
		wantErr bool
	}{
		{raw: "", want: report.RangeAll},
		{raw: "Today", want: report.RangeToday},
		{raw: "week", want: report.RangeWeek},
		{raw: "month", want: report.RangeMonth},
		{raw: "year", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := report.ParseRange(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		r        report.Range
		bookings int
		revenue  int
	}{
		{name: "all", r: report.RangeAll, bookings: 4, revenue: 13625},
		{name: "today", r: report.RangeToday, bookings: 1, revenue: 5625},
		{name: "rolling week", r: report.RangeWeek, bookings: 2, revenue: 10125},
		{name: "month falls back to checkin", r: report.RangeMonth, bookings: 3, revenue: 12625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := report.ComputeStats(bookings(), 7, tt.r, now)

			assert.Equal(t, tt.bookings, stats.TotalBookings)
			assert.Equal(t, tt.revenue, stats.TotalRevenue)
			assert.Equal(t, 7, stats.TotalUsers)
		})
	}
}

func TestRevenueByRoom(t *testing.T) {
	got := report.RevenueByRoom(bookings())

	assert.Equal(t, []report.RoomRevenue{
		{Room: "Deluxe King Room", Revenue: 8125},
		{Room: "Executive Suite", Revenue: 4500},
		{Room: "Unknown", Revenue: 1000},
	}, got)
}

func TestBookingsCSV(t *testing.T) {
	rows := bookings()
	rows[0].Name = `Asha "AJ" Verma`
	rows[1].Name = "Ravi, Jr."

	csv := report.BookingsCSV(rows)
	lines := strings.Split(csv, "\n")

	assert.Len(t, lines, len(rows)+1)
	assert.Equal(t, "ID,Name,Email,DOB,GovtID,Room,Check-In,Check-Out,Price,Status", lines[0])
	assert.Equal(t, `b1,"Asha ""AJ"" Verma",,,,Deluxe King Room,2024-11-20,,5625,Confirmed`, lines[1])
	assert.Equal(t, "b2,Ravi, Jr.,,,,Executive Suite,2024-11-10,,4500,Checked In", lines[2])
}

func TestBookingsCSV_Empty(t *testing.T) {
	assert.Equal(t, "ID,Name,Email,DOB,GovtID,Room,Check-In,Check-Out,Price,Status", report.BookingsCSV(nil))
}

func TestInquiriesCSV(t *testing.T) {
	csv := report.InquiriesCSV([]inquiryDto.InquiryResponse{
		{ID: "i1", Name: "Meera", Email: "m@example.com", Message: `Is the "sea view" real?`, CreatedAt: "2024-11-15T08:00:00Z"},
		{ID: "i2", Name: "Kabir", Email: "k@example.com", Message: "Parking?"},
	})

	lines := strings.Split(csv, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "ID,Name,Email,Message,Date", lines[0])
	assert.Equal(t, `i1,Meera,m@example.com,"Is the ""sea view"" real?",2024-11-15`, lines[1])
	assert.Equal(t, `i2,Kabir,k@example.com,"Parking?",`, lines[2])
}
