package shared

import (
	"agenda/shared/dto"
	"strings"
)

const cacheKeySeparator = ":"

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return FilterByField(fieldID, id, table)
}

// FilterByField builds a single equality filter group.
func FilterByField(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterBetween builds an inclusive range filter over one column.
func FilterBetween(field string, from, to any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				ArgName:  field + "_from",
				Field:    field,
				Value:    from,
				Operator: dto.FilterOperatorGreaterEq,
				Table:    table,
			},
			dto.Filter{
				ArgName:  field + "_to",
				Field:    field,
				Value:    to,
				Operator: dto.FilterOperatorLessEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}
