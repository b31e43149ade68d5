package model

import "grandhotel/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID     = "id"
	FieldName   = "name"
	FieldText   = "text"
	FieldRating = "rating"

	DefaultRating = 5
)

type Review struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Text   string `db:"text"`
	Rating int    `db:"rating"`
	model.Metadata
}
