package dto_test

import (
	"testing"

	"grandhotel/internal/domains/review/model"
	"grandhotel/internal/domains/review/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateReviewRequest_ToModel(t *testing.T) {
	tests := []struct {
		name   string
		rating int
		want   int
	}{
		{name: "defaults to five stars", rating: 0, want: model.DefaultRating},
		{name: "keeps given rating", rating: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateReviewRequest{Name: " Ananya ", Text: "Lovely stay", Rating: tt.rating}

			review := req.ToModel("guest")

			assert.NotEmpty(t, review.ID)
			assert.Equal(t, "Ananya", review.Name)
			assert.Equal(t, tt.want, review.Rating)
		})
	}
}
