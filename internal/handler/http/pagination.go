package http

import (
	"net/http"
	"strconv"

	"github.com/fayrashop/api/models"
)

// pageQueryFromRequest extracts pagination, sorting, and search parameters
// from the query string. Unparsable numbers fall back to the defaults via
// Normalize rather than erroring.
func pageQueryFromRequest(r *http.Request) models.PageQuery {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	return models.PageQuery{
		Page:      page,
		Limit:     limit,
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Search:    q.Get("search"),
	}.Normalize()
}
