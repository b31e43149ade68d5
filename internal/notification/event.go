package notification

import (
	"fmt"

	"grandhotel/internal/domains/pricing"
)

// BookingConfirmed is published once a booking is persisted with status Confirmed.
type BookingConfirmed struct {
	BookingID string `json:"booking_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Room      string `json:"room"`
	Checkin   string `json:"checkin"`
	Checkout  string `json:"checkout"`
	Price     int    `json:"price"`
}

// TemplateParams maps the event onto the confirmation email template variables.
func (e BookingConfirmed) TemplateParams() map[string]string {
	return map[string]string{
		"to_email":      e.Email,
		"guest_name":    e.Name,
		"room_type":     e.Room,
		"checkin_date":  e.Checkin,
		"checkout_date": e.Checkout,
		"amount":        fmt.Sprintf("₹%s", pricing.FormatAmount(e.Price)),
	}
}
