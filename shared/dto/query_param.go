package dto

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

const (
	queryParamPage  = "page"
	queryParamLimit = "limit"
)

// QueryParams carries optional paging and a server chosen ordering.
// SortBy is never read from the request since it is interpolated into SQL.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=500"`
	SortBy  string `json:"-"`
	SortDir string `json:"-"        validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page and limit from the query string. Invalid values are ignored.
func (q *QueryParams) FromRequest(r *http.Request) {
	values := r.URL.Query()

	if page, err := strconv.Atoi(values.Get(queryParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(values.Get(queryParamLimit)); err == nil && limit > 0 {
		q.Limit = limit
	}
}

// OrderBy sets a server side ordering.
func (q QueryParams) OrderBy(column, dir string) QueryParams {
	q.SortBy = column
	q.SortDir = strings.ToUpper(dir)

	return q
}
