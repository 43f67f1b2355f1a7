package pagination

import (
	"strconv"

	pkgErrors "api-scaffold/pkg/errors"
)

// FromQuery parses raw page/limit query parameters. Empty strings are
// treated as not given.
func FromQuery(page, limit string) (Options, error) {
	var o Options
	if page != "" {
		v, err := strconv.Atoi(page)
		if err != nil {
			return Options{}, pkgErrors.NewValidation("Page must be an integer",
				pkgErrors.WithField("field", "page"), pkgErrors.WithCause(err))
		}
		o.Page = &v
	}
	if limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil {
			return Options{}, pkgErrors.NewValidation("Limit must be an integer",
				pkgErrors.WithField("field", "limit"), pkgErrors.WithCause(err))
		}
		o.Limit = &v
	}
	return o, nil
}
