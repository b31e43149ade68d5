package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grandhotel/internal/domains/booking/model/dto"
)

func TestListFilter_FilterGroup(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.ListFilter
		wantWhere string
		wantArgs  map[string]any
	}{
		{name: "everything", filter: dto.ListFilter{}, wantWhere: "", wantArgs: map[string]any{}},
		{
			name:      "name ignores case",
			filter:    dto.ListFilter{Name: "  Asha Verma "},
			wantWhere: "(LOWER(bookings.name) = LOWER(:name))",
			wantArgs:  map[string]any{"name": "Asha Verma"},
		},
		{
			name:      "name or email",
			filter:    dto.ListFilter{Name: "Asha", Email: "asha@example.com"},
			wantWhere: "(LOWER(bookings.name) = LOWER(:name) OR bookings.email = :email)",
			wantArgs:  map[string]any{"name": "Asha", "email": "asha@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.FilterGroup().GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestListFilter_Match(t *testing.T) {
	row := dto.BookingResponse{Name: "Asha Verma", Email: "asha@example.com"}

	assert.True(t, dto.ListFilter{}.Match(row))
	assert.True(t, dto.ListFilter{Name: "asha verma"}.Match(row))
	assert.True(t, dto.ListFilter{Email: "asha@example.com"}.Match(row))
	assert.False(t, dto.ListFilter{Name: "Ravi"}.Match(row))
}
