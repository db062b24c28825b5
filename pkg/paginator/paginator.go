// Package paginator computes bounded pages and the metadata returned with them.
package paginator

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Query is a requested page. Zero or negative values fall back to defaults.
type Query struct {
	Page     int
	PageSize int
}

// Normalize applies defaults and caps PageSize at MaxPageSize.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset is the number of documents to skip for this page. It saturates at
// math.MaxInt instead of overflowing, so a far page is simply empty.
func (q Query) Offset() int {
	n := q.Normalize()
	if n.Page-1 > math.MaxInt/n.PageSize {
		return math.MaxInt
	}
	return (n.Page - 1) * n.PageSize
}

// Limit is the maximum number of documents on this page.
func (q Query) Limit() int {
	return q.Normalize().PageSize
}

// Pagination is the metadata rendered next to a page of results.
type Pagination struct {
	Page          int   `json:"page"`
	PageSize      int   `json:"pageSize"`
	PageCount     int   `json:"pageCount"`
	TotalDocument int64 `json:"totalDocument"`
}

// New builds the pagination metadata for q over total documents.
func New(q Query, total int64) Pagination {
	q = q.Normalize()
	if total < 0 {
		total = 0
	}
	size := int64(q.PageSize)
	return Pagination{
		Page:          q.Page,
		PageSize:      q.PageSize,
		PageCount:     int((total + size - 1) / size),
		TotalDocument: total,
	}
}
