package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"grandhotel/config"
	"grandhotel/shared/failure"
	"grandhotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldDOB        = "dob"
	FieldGovtIDName = "govt_id_name"
	FieldGovtIDURL  = "govt_id_url"
	FieldRoom       = "room"
	FieldCheckin    = "checkin"
	FieldCheckout   = "checkout"
	FieldNights     = "nights"
	FieldPrice      = "price"
	FieldStatus     = "status"

	GovtIDDirectory = "govt-id"
)

type Status string

const (
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "Checked In"
	StatusCheckedOut Status = "Checked Out"
	StatusCancelled  Status = "Cancelled"
)

var Statuses = []Status{StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

// Transitions is the lifecycle enforced when strict transitions are enabled.
// Checked Out and Cancelled are terminal.
var Transitions = map[Status][]Status{
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// ParseStatus matches raw against the known statuses ignoring case and spaces, so
// "checkedin" and "Checked In" are the same status.
func ParseStatus(raw string) (Status, bool) {
	key := strings.ToLower(strings.ReplaceAll(raw, " ", ""))

	for _, s := range Statuses {
		if strings.ToLower(strings.ReplaceAll(string(s), " ", "")) == key {
			return s, true
		}
	}

	return "", false
}

// Validate backs the "domain" validation tag.
func (s Status) Validate(_ *config.Config) error {
	if !s.Valid() {
		return fmt.Errorf("unknown booking status %q", s)
	}

	return nil
}

// CanTransitionTo reports whether the strict table allows s -> next.
// Re-applying the current status is always allowed.
func (s Status) CanTransitionTo(next Status) bool {
	return s == next || slices.Contains(Transitions[s], next)
}

// CheckTransition returns a conflict failure for moves the strict table rejects.
// With strict off every valid status may follow any other.
func CheckTransition(from, to Status, strict bool) error {
	if !strict || from.CanTransitionTo(to) {
		return nil
	}

	return failure.Conflict(fmt.Sprintf("booking cannot move from %s to %s", from, to))
}

type Booking struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	DOB        string    `db:"dob"`
	GovtIDName string    `db:"govt_id_name"`
	GovtIDURL  string    `db:"govt_id_url"`
	Room       string    `db:"room"`
	Checkin    time.Time `db:"checkin"`
	Checkout   time.Time `db:"checkout"`
	Nights     int       `db:"nights"`
	Price      int       `db:"price"`
	Status     Status    `db:"status"`
	model.Metadata
}
