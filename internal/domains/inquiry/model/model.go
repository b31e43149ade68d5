package model

import "grandhotel/shared/model"

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

type Inquiry struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Message string `db:"message"`
	model.Metadata
}
