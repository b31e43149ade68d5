package dto

import (
	"strings"

	"grandhotel/internal/domains/inquiry/model"
	"grandhotel/shared"
	"grandhotel/shared/constant"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateInquiryRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Message string `json:"message" validate:"required,max=2000"`
}

func (c *CreateInquiryRequest) ToModel(user string) model.Inquiry {
	now := timezone.Now()

	return model.Inquiry{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type InquiryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (r *InquiryResponse) FromModel(model model.Inquiry) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Message = model.Message
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.TotalPages(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, mod := range models {
		r.Inquiries[i].FromModel(mod)
	}
}
