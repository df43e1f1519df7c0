package dto

import (
	"net/http"
	"strconv"

	"frontdesk/shared/constant"
)

// QueryParams carries list pagination. The upstream directory endpoints
// return full collections, so paging is applied locally after the fetch.
type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,gte=1"`
	Limit int `json:"limit" validate:"omitempty,gte=1"`
}

// FromRequest reads page and limit from the query string, ignoring
// values that are not positive integers. With defaultRequest set,
// missing values fall back to the application defaults.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
