package entity

import "math"

// Page is one window of an ordered listing. Items is empty, never nil, past the last page.
type Page[T any] struct {
	Items   []T
	Page    int
	PerPage int
	Total   int64
}

// NewPage normalises items so an out-of-range page serialises as an empty list.
func NewPage[T any](items []T, page, perPage int, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{Items: items, Page: page, PerPage: perPage, Total: total}
}

// Pages returns the number of pages needed for Total items.
func (p *Page[T]) Pages() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 0
	}

	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// HasPrev reports whether a previous page exists.
func (p *Page[T]) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a following page exists.
func (p *Page[T]) HasNext() bool {
	return p.Page < p.Pages()
}

// Offset returns the number of items preceding the given page. Pages too far out to address
// saturate at math.MaxInt, which still lies past the last row.
func Offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}

	return (page - 1) * perPage
}
