package dto

import (
	"agenda/shared/constant"
	"net/http"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// LimitFromRequest reads the "limit" query parameter. Missing, malformed or
// non-positive values fall back to defaultLimit; values above maxLimit are capped.
func (q *QueryParams) LimitFromRequest(r *http.Request, defaultLimit, maxLimit int) {
	q.Limit = defaultLimit

	if limit := r.URL.Query().Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
}
