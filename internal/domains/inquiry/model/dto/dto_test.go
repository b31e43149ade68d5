package dto_test

import (
	"testing"
	"time"

	"grandhotel/internal/domains/inquiry/model"
	"grandhotel/internal/domains/inquiry/model/dto"
	gModel "grandhotel/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestCreateInquiryRequest_ToModel(t *testing.T) {
	req := dto.CreateInquiryRequest{
		Name:    "  Meera  ",
		Email:   "meera@example.com ",
		Message: "Is breakfast included?",
	}

	inquiry := req.ToModel("guest")

	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, "Meera", inquiry.Name)
	assert.Equal(t, "meera@example.com", inquiry.Email)
	assert.Equal(t, req.Message, inquiry.Message)
	assert.Equal(t, "guest", inquiry.CreatedBy)
	assert.False(t, inquiry.CreatedAt.IsZero())
}

func TestGetInquiriesResponse_FromModels(t *testing.T) {
	created := time.Date(2024, 11, 1, 9, 30, 0, 0, time.UTC)
	models := []model.Inquiry{
		{ID: "i1", Name: "Meera", Metadata: gModel.Metadata{CreatedAt: created}},
		{ID: "i2", Name: "Kabir", Metadata: gModel.Metadata{CreatedAt: created}},
	}

	var res dto.GetInquiriesResponse
	res.FromModels(models, 12, 10)

	assert.Len(t, res.Inquiries, 2)
	assert.Equal(t, "i1", res.Inquiries[0].ID)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.NotEmpty(t, res.Inquiries[1].CreatedAt)
}
