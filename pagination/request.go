// Package pagination builds MongoDB query, sort, and paging parameters
// from a page/limit/sort request shape, and carries a page of results.
//
// Cross-page consistency is the database's concern, not this package's.
package pagination

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aleister1102/toolbox/errorwrapper"
)

var validate = validator.New()

// Request describes one page of a query: 1-based page number, page size,
// and an optional sort property with direction
type Request struct {
	Page   int    `validate:"gte=1"`
	Limit  int    `validate:"gte=1,lte=1000"`
	SortBy string `validate:"omitempty,min=1"`
	Order  string `validate:"omitempty,oneof=asc desc"`
}

// DefaultRequest returns the first page with a sensible page size
func DefaultRequest() Request {
	return Request{Page: 1, Limit: 20}
}

// Validate checks the request shape
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return errorwrapper.NewValidationError(first.Field(), first.Value(), "failed '"+first.Tag()+"' constraint")
		}
		return errorwrapper.WrapError(err, "invalid pagination request")
	}
	return nil
}

// Skip returns the number of documents to skip before this page
func (r Request) Skip() int64 {
	return int64(r.Page-1) * int64(r.Limit)
}

// Direction returns the sort direction, defaulting to ascending
func (r Request) Direction() Direction {
	if r.Order == "desc" {
		return Desc
	}
	return Asc
}

// FindOptions translates the request into driver find options: skip,
// limit, and sort when a sort property is set
func (r Request) FindOptions() (*options.FindOptions, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(r.Skip()).
		SetLimit(int64(r.Limit))

	if r.SortBy != "" {
		opts.SetSort(bson.D{{Key: r.SortBy, Value: r.Direction().Value()}})
	}

	return opts, nil
}
