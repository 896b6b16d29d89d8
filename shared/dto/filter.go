package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is a single named-parameter predicate. ArgName defaults to Field and must be
// set when the same column appears twice in one group.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq in not_eq less_eq greater_eq"`
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	comparison := map[string]string{
		FilterOperatorEq:        "=",
		FilterOperatorNotEq:     "!=",
		FilterOperatorLessEq:    "<=",
		FilterOperatorGreaterEq: ">=",
	}

	if op, ok := comparison[f.Operator]; ok {
		args[argName] = f.Value

		return fmt.Sprintf("%s %s :%s", column, op, argName), args
	}

	if f.Operator != FilterOperatorIn {
		return "", args
	}

	val := reflect.ValueOf(f.Value)
	if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
		args[argName] = f.Value

		return fmt.Sprintf("%s IN (:%s) ", column, argName), args
	}

	named := make([]string, val.Len())

	for idx := range val.Len() {
		args[fmt.Sprintf("%s_%d", argName, idx)] = val.Index(idx).Interface()

		named[idx] = fmt.Sprintf(":%s_%d", argName, idx)
	}

	return fmt.Sprintf("%s IN (%s) ", column, strings.Join(named, ", ")), args
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		switch fill := filter.(type) {
		case Filter:
			where, arg := fill.GetWhereClause()
			whereClause = append(whereClause, where)

			maps.Copy(args, arg)
		case FilterGroup:
			where, arg := fill.GetWhereClause()
			whereClause = append(whereClause, where)

			maps.Copy(args, arg)
		}
	}

	if len(whereClause) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+f.Operator+" ")), args
}
