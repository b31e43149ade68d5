package dto

import (
	"slices"
	"strings"

	"grandhotel/internal/domains/pricing"
	"grandhotel/internal/domains/room/model"
	"grandhotel/shared/constant"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	Name         string   `json:"name"          validate:"required,max=100"`
	Price        int      `json:"price"         validate:"required,gt=0"`
	PriceDisplay string   `json:"price_display" validate:"omitempty,max=50"`
	Image        string   `json:"image"         validate:"omitempty"`
	Gallery      []string `json:"gallery"       validate:"omitempty,dive,required"`
	Amenities    []string `json:"amenities"     validate:"omitempty,dive,required,max=50"`
}

// ToModel fills the defaults shown on the catalog: the formatted price and a
// gallery made of the cover image.
func (c *CreateRoomRequest) ToModel(user, imageURL string) model.Room {
	now := timezone.Now()

	return model.Room{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(c.Name),
		Price:        c.Price,
		PriceDisplay: displayPrice(c.PriceDisplay, c.Price),
		Image:        imageURL,
		Gallery:      gallery(c.Gallery, imageURL),
		Amenities:    nonNil(c.Amenities),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	ID           string   `json:"id"            validate:"required"`
	Name         string   `json:"name"          validate:"required,max=100"`
	Price        int      `json:"price"         validate:"required,gt=0"`
	PriceDisplay string   `json:"price_display" validate:"omitempty,max=50"`
	Image        string   `json:"image"         validate:"omitempty"`
	Gallery      []string `json:"gallery"       validate:"omitempty,dive,required"`
	Amenities    []string `json:"amenities"     validate:"omitempty,dive,required,max=50"`
}

// Fields returns the full replacement row. The gallery is only touched when sent.
func (u *UpdateRoomRequest) Fields(imageURL string) map[string]any {
	fields := map[string]any{
		model.FieldName:         strings.TrimSpace(u.Name),
		model.FieldPrice:        u.Price,
		model.FieldPriceDisplay: displayPrice(u.PriceDisplay, u.Price),
		model.FieldImage:        imageURL,
		model.FieldAmenities:    pq.StringArray(nonNil(u.Amenities)),
	}

	if len(u.Gallery) > 0 {
		fields[model.FieldGallery] = pq.StringArray(gallery(u.Gallery, imageURL))
	}

	return fields
}

// Apply overwrites room with the update, using the same defaults as Fields.
func (u *UpdateRoomRequest) Apply(room *RoomResponse) {
	room.Name = strings.TrimSpace(u.Name)
	room.Price = u.Price
	room.PriceDisplay = displayPrice(u.PriceDisplay, u.Price)
	room.Image = u.Image
	room.Amenities = nonNil(u.Amenities)

	if len(u.Gallery) > 0 {
		room.Gallery = gallery(u.Gallery, u.Image)
	}
}

type RoomResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        int      `json:"price"`
	PriceDisplay string   `json:"price_display"`
	Image        string   `json:"image"`
	Gallery      []string `json:"gallery"`
	Amenities    []string `json:"amenities"`
	CreatedAt    string   `json:"created_at"`
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Name = m.Name
	r.Price = m.Price
	r.PriceDisplay = m.PriceDisplay
	r.Image = m.Image
	r.Gallery = nonNil(m.Gallery)
	r.Amenities = nonNil(m.Amenities)
	r.CreatedAt = m.CreatedAt.Format(constant.DateFormat)
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

// Filter narrows the catalog. Zero values disable a criterion.
type Filter struct {
	MinPrice int    `json:"min_price"`
	MaxPrice int    `json:"max_price"`
	Amenity  string `json:"amenity"`
	Search   string `json:"search"`
}

func (f Filter) Match(room RoomResponse) bool {
	if f.MinPrice > 0 && room.Price < f.MinPrice {
		return false
	}

	if f.MaxPrice > 0 && room.Price > f.MaxPrice {
		return false
	}

	if f.Amenity != "" && !slices.ContainsFunc(room.Amenities, func(a string) bool {
		return strings.EqualFold(a, f.Amenity)
	}) {
		return false
	}

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if strings.Contains(strings.ToLower(room.Name), term) {
			return true
		}

		return slices.ContainsFunc(room.Amenities, func(a string) bool {
			return strings.Contains(strings.ToLower(a), term)
		})
	}

	return true
}

func (f Filter) Apply(rooms []RoomResponse) []RoomResponse {
	res := make([]RoomResponse, 0, len(rooms))

	for _, room := range rooms {
		if f.Match(room) {
			res = append(res, room)
		}
	}

	return res
}

func displayPrice(display string, price int) string {
	if display = strings.TrimSpace(display); display != "" {
		return display
	}

	return pricing.FormatAmount(price)
}

func gallery(images []string, cover string) []string {
	if len(images) > 0 {
		return images
	}

	if cover == "" {
		return []string{}
	}

	return []string{cover}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
