package dto

import (
	"net/http"
	"strconv"
	"strings"

	"grandhotel/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	SortBy  string `json:"sort_by"`
	SortDir string `json:"sort_dir" enums:"ASC,DESC"`
}

// ParseQueryParams reads page, limit, sort_by and sort_dir from the url.
// Values the request leaves out or gets wrong keep what fallback holds, and limit is
// capped at constant.MaxValueLimit.
func ParseQueryParams(r *http.Request, fallback QueryParams) QueryParams {
	q := fallback
	values := r.URL.Query()

	if page, err := strconv.Atoi(values.Get(constant.RequestParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(values.Get(constant.RequestParamLimit)); err == nil && limit > 0 {
		q.Limit = limit
	}

	q.Limit = min(q.Limit, constant.MaxValueLimit)

	if sortBy := strings.TrimSpace(values.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if q.SortBy != "" && q.SortDir == "" {
		q.SortDir = SortDirAsc
	}

	return q
}

// DefaultQueryParams is the first page of the newest rows.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueLimit,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}
}
