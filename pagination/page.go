package pagination

import (
	"github.com/aleister1102/toolbox/errorwrapper"
)

// Page holds one page of results along with the paging metadata needed to
// render navigation
type Page[T any] struct {
	Items      []T
	TotalItems int64
	PageNumber int
	Limit      int
}

// NewPage builds a page of results for the given request
func NewPage[T any](items []T, totalItems int64, request Request) (Page[T], error) {
	if err := request.Validate(); err != nil {
		return Page[T]{}, err
	}
	if totalItems < 0 {
		return Page[T]{}, errorwrapper.NewValidationError("totalItems", totalItems, "must not be negative")
	}

	return Page[T]{
		Items:      items,
		TotalItems: totalItems,
		PageNumber: request.Page,
		Limit:      request.Limit,
	}, nil
}

// TotalPages returns the page count, rounding up for a partial final page
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.TotalItems + int64(p.Limit) - 1) / int64(p.Limit))
}

// HasNext reports whether a following page exists
func (p Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages()
}

// HasPrev reports whether a preceding page exists
func (p Page[T]) HasPrev() bool {
	return p.PageNumber > 1
}

// IsEmpty reports whether the page holds no items
func (p Page[T]) IsEmpty() bool {
	return len(p.Items) == 0
}
