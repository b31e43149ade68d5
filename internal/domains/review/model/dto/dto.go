package dto

import (
	"strings"

	"grandhotel/internal/domains/review/model"
	"grandhotel/shared/constant"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Text   string `json:"text"   validate:"required,max=2000"`
	Rating int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// ToModel falls back to a five star rating when none was given.
func (c *CreateReviewRequest) ToModel(user string) model.Review {
	now := timezone.Now()

	rating := c.Rating
	if rating == 0 {
		rating = model.DefaultRating
	}

	return model.Review{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(c.Name),
		Text:   strings.TrimSpace(c.Text),
		Rating: rating,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReviewResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.Name = model.Name
	r.Text = model.Text
	r.Rating = model.Rating
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

func FromModels(models []model.Review) []ReviewResponse {
	res := make([]ReviewResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
