package model

import "grandhotel/shared/model"

const (
	TableName  = "blacklist"
	EntityName = "blacklist"

	FieldPhone  = "phone"
	FieldReason = "reason"
)

// Entry flags a phone number. It is informational; nothing blocks bookings from it.
type Entry struct {
	Phone  string `db:"phone"`
	Reason string `db:"reason"`
	model.Metadata
}
