// Package pagination holds the page/limit/offset arithmetic shared by every
// list endpoint so that paging behaves identically for all entities.
package pagination

import (
	pkgErrors "api-scaffold/pkg/errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Options is the caller's pagination intent. A nil field means "not given".
type Options struct {
	Page   *int
	Limit  *int
	Offset *int
}

// Params is a normalized, validated Options value.
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Metadata describes one page of a listing.
type Metadata struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"total_pages"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// Result is a page of data plus its metadata.
type Result[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// New returns Options for the given page and limit.
func New(page, limit int) Options {
	return Options{Page: &page, Limit: &limit}
}

// WithOffset returns a copy of o with an explicit offset.
func (o Options) WithOffset(offset int) Options {
	o.Offset = &offset
	return o
}

// CalculateOffset returns (page-1)*limit. Non-positive pages are not clamped;
// use Normalize to reject them.
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total/limit), or 0 when there is nothing to page.
func CalculateTotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Normalize fills defaults and validates the result. Each constraint is
// checked on its own and reported with its own message.
func Normalize(o Options) (Params, error) {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}
	if o.Page != nil {
		p.Page = *o.Page
	}
	if o.Limit != nil {
		p.Limit = *o.Limit
	}
	if o.Offset != nil {
		p.Offset = *o.Offset
	} else {
		p.Offset = CalculateOffset(p.Page, p.Limit)
	}

	if p.Page < 1 {
		return Params{}, invalid("page", p.Page, "Page must be greater than 0")
	}
	if p.Limit < 1 {
		return Params{}, invalid("limit", p.Limit, "Limit must be greater than 0")
	}
	if p.Limit > MaxLimit {
		return Params{}, invalid("limit", p.Limit, "Limit must be less than or equal to 100")
	}
	if p.Offset < 0 {
		return Params{}, invalid("offset", p.Offset, "Offset must be greater than or equal to 0")
	}
	return p, nil
}

// NewMetadata normalizes o and computes the page metadata for total rows.
func NewMetadata(total int, o Options) (Metadata, error) {
	p, err := Normalize(o)
	if err != nil {
		return Metadata{}, err
	}
	totalPages := CalculateTotalPages(total, p.Limit)
	return Metadata{
		Page:            p.Page,
		Limit:           p.Limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}, nil
}

func invalid(field string, value int, msg string) error {
	return pkgErrors.NewValidation(msg,
		pkgErrors.WithField("field", field),
		pkgErrors.WithField("value", value),
	)
}
