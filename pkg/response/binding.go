package response

import (
	"errors"
	"strconv"
	"strings"

	pkgErrors "api-scaffold/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// BindingError turns a gin binding failure into a Validation error listing the
// rejected fields.
func BindingError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]any, len(ve))
		for _, fe := range ve {
			fields[fieldName(fe)] = rule(fe)
		}
		return pkgErrors.NewValidation("Request validation failed",
			pkgErrors.WithField("fields", fields),
			pkgErrors.WithCause(err),
		)
	}
	return pkgErrors.NewValidation("Malformed request", pkgErrors.WithCause(err))
}

// ParseID reads a positive integer path parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewValidation("id must be a positive integer", pkgErrors.WithField("id", raw))
	}
	return id, nil
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
