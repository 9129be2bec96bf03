package dto

import (
	"net/http"
	"strconv"

	"roombook/shared/constant"
	"roombook/shared/failure"
)

type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,gt=0"`
	Limit int `json:"limit" validate:"omitempty,gt=0"`
}

// FromRequest populates QueryParams from the HTTP request. A page or limit
// that is not a positive integer is rejected. With defaultRequest set, missing
// values fall back to constant.DefaultValuePage and constant.DefaultValueLimit.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) error {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt <= 0 {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt <= 0 {
			return failure.InvalidLimitParam
		}

		q.Limit = limitInt
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}

	return nil
}

// Window returns the [from, to) slice bounds of the requested page over total items.
// A zero Limit selects everything; a page past the end selects nothing.
func (q QueryParams) Window(total int) (from, to int) {
	if q.Limit <= 0 {
		return 0, total
	}

	if total <= 0 {
		return 0, 0
	}

	page := max(q.Page, 1)

	// compared before multiplying so a huge page cannot overflow
	if page-1 > (total-1)/q.Limit {
		return total, total
	}

	from = (page - 1) * q.Limit
	to = from + min(q.Limit, total-from)

	return from, to
}
