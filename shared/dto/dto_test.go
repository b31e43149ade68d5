package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"grandhotel/shared/constant"
	"grandhotel/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "phone", Value: "+919876543210", Operator: dto.FilterOperatorEq, Table: "users"},
			wantWhere: "users.phone = :phone",
			wantArgs:  map[string]any{"phone": "+919876543210"},
		},
		{
			name:      "eq fold",
			filter:    dto.Filter{Field: "name", Value: "Asha Verma", Operator: dto.FilterOperatorEqFold},
			wantWhere: "LOWER(name) = LOWER(:name)",
			wantArgs:  map[string]any{"name": "Asha Verma"},
		},
		{
			name:      "like with arg name",
			filter:    dto.Filter{ArgName: "q", Field: "name", Value: "suite", Operator: dto.FilterOperatorLike, Table: "rooms"},
			wantWhere: "LOWER(rooms.name) LIKE LOWER(:q)",
			wantArgs:  map[string]any{"q": "%suite%"},
		},
		{
			name:      "in",
			filter:    dto.Filter{Field: "status", Value: []string{"Confirmed", "CheckedIn"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "Confirmed", "status_1": "CheckedIn"},
		},
		{
			name:      "in with nothing",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "status", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "name", Value: "asha", Operator: dto.FilterOperatorEqFold},
			dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "email", Value: "asha@example.com", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "status", Value: "Confirmed", Operator: dto.FilterOperatorEq},
			}},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(LOWER(name) = LOWER(:name) OR (email = :email AND status = :status))", where)
	assert.Equal(t, map[string]any{"name": "asha", "email": "asha@example.com", "status": "Confirmed"}, args)

	where, args = dto.FilterGroup{}.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestParseQueryParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		fallback dto.QueryParams
		want     dto.QueryParams
	}{
		{
			name:     "defaults",
			fallback: dto.DefaultQueryParams(),
			want:     dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"},
		},
		{
			name:     "everything set",
			query:    "?page=3&limit=25&sort_by=rating&sort_dir=asc",
			fallback: dto.DefaultQueryParams(),
			want:     dto.QueryParams{Page: 3, Limit: 25, SortBy: "rating", SortDir: "ASC"},
		},
		{
			name:     "junk keeps fallback",
			query:    "?page=zero&limit=-5&sort_dir=sideways",
			fallback: dto.DefaultQueryParams(),
			want:     dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"},
		},
		{
			name:     "limit capped",
			query:    "?limit=5000",
			fallback: dto.QueryParams{},
			want:     dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "sort by without direction",
			query:    "?sort_by=name",
			fallback: dto.QueryParams{},
			want:     dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/reviews"+tt.query, nil)

			assert.Equal(t, tt.want, dto.ParseQueryParams(r, tt.fallback))
		})
	}
}
