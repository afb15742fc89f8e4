package models

// Pagination defaults and bounds applied to list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageQuery carries the pagination, sorting, and search parameters of a
// list request, extracted from the query string.
type PageQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "ASC" or "DESC"
	Search    string
}

// Normalize clamps the query to sane bounds and fills in defaults.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.SortOrder != "ASC" {
		q.SortOrder = "DESC"
	}
	return q
}

// Offset returns the row offset corresponding to the page and limit.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PageMeta describes the position of a page within the full result set.
type PageMeta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// NewPageMeta computes page metadata for the given query and total row count.
func NewPageMeta(q PageQuery, total int) PageMeta {
	totalPages := 0
	if q.Limit > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}
	return PageMeta{
		Page:        q.Page,
		Limit:       q.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     q.Page < totalPages,
		HasPrevious: q.Page > 1,
	}
}

// Paginated couples a page of results with its metadata. When a handler
// returns a Paginated, the response normalizer lifts Meta into the
// envelope's meta field instead of nesting it under data.
type Paginated struct {
	Data any      `json:"data"`
	Meta PageMeta `json:"meta"`
}
