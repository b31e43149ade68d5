package model

import "grandhotel/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldPassword = "password"
)

// User is a guest account keyed by phone. Password holds a bcrypt hash for new accounts;
// older rows may hold a salted sha256 or a plaintext credential.
type User struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Phone    string `db:"phone"`
	Password string `db:"password"`
	model.Metadata
}
