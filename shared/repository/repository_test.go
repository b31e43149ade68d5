package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"grandhotel/infras/otel/mocks"
	"grandhotel/shared/dto"
	"grandhotel/shared/failure"
	"grandhotel/shared/model"
)

type coupon struct {
	Code     string `db:"code"`
	Discount int    `db:"discount"`
	Note     string `db:"-"`
	Cached   bool
	model.Metadata
}

func newCouponRepo() Repository[coupon] {
	return NewRepository[coupon]("Coupon", "coupons", "code", nil, mocks.NewOtel())
}

func TestDBColumns(t *testing.T) {
	repo := newCouponRepo()

	assert.Equal(t, []string{"code", "discount", "created_at", "modified_at", "created_by", "modified_by"}, repo.columns)
}

func TestSelectList(t *testing.T) {
	repo := newCouponRepo()

	assert.Equal(t, "coupons.code, coupons.discount", repo.selectList([]string{"discount", "code", "unknown"}))
	assert.Contains(t, repo.selectList(nil), "coupons.modified_by")
}

func TestOrderBy(t *testing.T) {
	repo := newCouponRepo()

	tests := []struct {
		name    string
		params  dto.QueryParams
		want    string
		wantErr bool
	}{
		{name: "no sort", params: dto.QueryParams{}, want: ""},
		{name: "known column", params: dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc}, want: "ORDER BY coupons.created_at DESC"},
		{name: "unknown column", params: dto.QueryParams{SortBy: "code; DROP TABLE coupons", SortDir: dto.SortDirAsc}, wantErr: true},
		{name: "bad direction", params: dto.QueryParams{SortBy: "code", SortDir: "UP"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.orderBy(tt.params)

			if tt.wantErr {
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildWhereClause(t *testing.T) {
	repo := newCouponRepo()

	where, args := repo.BuildWhereClause(dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "code", Value: "WELCOME10", Operator: dto.FilterOperatorEq, Table: "coupons"},
	}})

	assert.Equal(t, "WHERE (coupons.code = :code)", where)
	assert.Equal(t, map[string]any{"code": "WELCOME10"}, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{})

	assert.Empty(t, where)
	assert.NotNil(t, args)
}

func TestWritesRequireFilter(t *testing.T) {
	repo := newCouponRepo()
	ctx := t.Context()

	assert.ErrorIs(t, repo.Delete(ctx, dto.FilterGroup{}), errRequiredFilter)
	assert.ErrorIs(t, repo.Update(ctx, map[string]any{"discount": 5, "modified_at": time.Now()}, dto.FilterGroup{}), errRequiredFilter)

	_, err := repo.Exist(ctx, dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)
}
