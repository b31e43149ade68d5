package dto

import (
	"strings"
	"time"

	"grandhotel/internal/domains/booking/model"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Name       string       `json:"name"         validate:"required,max=100"`
	Email      string       `json:"email"        validate:"required,email,max=100"`
	DOB        string       `json:"dob"          validate:"omitempty,datetime=2006-01-02"`
	GovtIDName string       `json:"govt_id_name" validate:"omitempty,max=255"`
	GovtIDData string       `json:"govt_id_data" validate:"omitempty,dataurl=image/png image/jpeg application/pdf,dataurlmax=5"`
	Room       string       `json:"room"         validate:"required,max=100"`
	Checkin    string       `json:"checkin"      validate:"required,datetime=2006-01-02"`
	Checkout   string       `json:"checkout"     validate:"required,datetime=2006-01-02"`
	Price      int          `json:"price"        validate:"gte=0"`
	Status     model.Status `json:"status"       validate:"omitempty,domain"`
}

// Dates parses the stay boundaries as calendar days in the hotel timezone.
func (c *CreateBookingRequest) Dates() (checkin, checkout time.Time, err error) {
	checkin, err = timezone.ParseDate(c.Checkin)
	if err != nil {
		return checkin, checkout, err
	}

	checkout, err = timezone.ParseDate(c.Checkout)

	return checkin, checkout, err
}

func (c *CreateBookingRequest) ToModel(user string, checkin, checkout time.Time, nights int, govtIDURL string) model.Booking {
	now := timezone.Now()

	status := c.Status
	if status == "" {
		status = model.StatusConfirmed
	}

	return model.Booking{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(c.Name),
		Email:      strings.TrimSpace(c.Email),
		DOB:        c.DOB,
		GovtIDName: c.GovtIDName,
		GovtIDURL:  govtIDURL,
		Room:       c.Room,
		Checkin:    checkin,
		Checkout:   checkout,
		Nights:     nights,
		Price:      c.Price,
		Status:     status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStatusRequest struct {
	ID     string       `json:"id"     validate:"required"`
	Status model.Status `json:"status" validate:"required,domain"`
}

type BookingResponse struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	DOB        string       `json:"dob"`
	GovtIDName string       `json:"govt_id_name"`
	GovtIDURL  string       `json:"govt_id_url"`
	Room       string       `json:"room"`
	Checkin    string       `json:"checkin"`
	Checkout   string       `json:"checkout"`
	Nights     int          `json:"nights"`
	Price      int          `json:"price"`
	Status     model.Status `json:"status"`
	CreatedAt  string       `json:"created_at"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.DOB = m.DOB
	r.GovtIDName = m.GovtIDName
	r.GovtIDURL = m.GovtIDURL
	r.Room = m.Room
	r.Checkin = m.Checkin.Format(constant.DateOnlyFormat)
	r.Checkout = m.Checkout.Format(constant.DateOnlyFormat)
	r.Nights = m.Nights
	r.Price = m.Price
	r.Status = m.Status
	r.CreatedAt = m.CreatedAt.Format(constant.DateFormat)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

// ListFilter selects a guest's booking history: exact name ignoring case, or exact email.
// An empty filter lists everything.
type ListFilter struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (f ListFilter) FilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

	if name := strings.TrimSpace(f.Name); name != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldName,
			Value:    name,
			Operator: gDto.FilterOperatorEqFold,
			Table:    model.TableName,
		})
	}

	if email := strings.TrimSpace(f.Email); email != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Value:    email,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group
}

// Match is the in-memory form of FilterGroup, used against mirrored rows.
func (f ListFilter) Match(b BookingResponse) bool {
	name := strings.TrimSpace(f.Name)
	email := strings.TrimSpace(f.Email)

	if name == "" && email == "" {
		return true
	}

	return (name != "" && strings.EqualFold(b.Name, name)) || (email != "" && b.Email == email)
}
