package dto

import (
	"strings"

	"grandhotel/internal/domains/blacklist/model"
	"grandhotel/shared/constant"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"
)

type AddEntryRequest struct {
	Phone  string `json:"phone"  validate:"required,max=20,phone"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

func (r *AddEntryRequest) ToModel(user, phone string) model.Entry {
	now := timezone.Now()

	return model.Entry{
		Phone:  phone,
		Reason: strings.TrimSpace(r.Reason),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type EntryResponse struct {
	Phone     string `json:"phone"`
	Reason    string `json:"reason"`
	DateAdded string `json:"date_added"`
}

func (r *EntryResponse) FromModel(m model.Entry) {
	r.Phone = m.Phone
	r.Reason = m.Reason
	r.DateAdded = timezone.Format(m.CreatedAt, constant.DateFormat)
}

func FromModels(models []model.Entry) []EntryResponse {
	res := make([]EntryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
