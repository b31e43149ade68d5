package model

import (
	"grandhotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldPrice        = "price"
	FieldPriceDisplay = "price_display"
	FieldImage        = "image"
	FieldGallery      = "gallery"
	FieldAmenities    = "amenities"
)

type Room struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Price        int            `db:"price"`
	PriceDisplay string         `db:"price_display"`
	Image        string         `db:"image"`
	Gallery      pq.StringArray `db:"gallery"`
	Amenities    pq.StringArray `db:"amenities"`
	model.Metadata
}
