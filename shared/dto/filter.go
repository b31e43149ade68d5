package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq     = "eq"
	FilterOperatorEqFold = "eq_fold"
	FilterOperatorLike   = "like"
	FilterOperatorIn     = "in"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is one named-parameter condition. ArgName defaults to Field and must be unique
// inside a FilterGroup.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column := f.column()

	arg := f.ArgName
	if arg == "" {
		arg = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[arg] = f.Value

		return fmt.Sprintf("%s = :%s", column, arg), args
	case FilterOperatorEqFold:
		args[arg] = f.Value

		return fmt.Sprintf("LOWER(%s) = LOWER(:%s)", column, arg), args
	case FilterOperatorLike:
		args[arg] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, arg), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if val.Kind() != reflect.Slice || val.Len() == 0 {
			return "FALSE", args
		}

		named := make([]string, val.Len())
		for i := range val.Len() {
			key := fmt.Sprintf("%s_%d", arg, i)
			args[key] = val.Index(i).Interface()
			named[i] = ":" + key
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
	default:
		return "", args
	}
}

// FilterGroup joins Filters (Filter or nested FilterGroup values) with Operator, AND when empty.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch typed := item.(type) {
		case Filter:
			where, arg = typed.GetWhereClause()
		case FilterGroup:
			where, arg = typed.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	op := f.Operator
	if op == "" {
		op = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+op+" ") + ")", args
}
