package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"

	pkgErrors "api-scaffold/pkg/errors"
)

// storageError converts a raw storage failure into a Database error.
// Structured errors pass through unchanged. The raw cause is only logged at
// debug level; the HTTP error logger records the returned error once.
func (r *Repository[T, K]) storageError(ctx context.Context, op, description string, err error, fields map[string]any) error {
	var se *pkgErrors.Error
	if errors.As(err, &se) {
		return se
	}

	r.l.Debugf(ctx, "%s: %v", r.dsn(op), err)

	kv := map[string]any{"table": r.cfg.Table}
	maps.Copy(kv, fields)
	return pkgErrors.NewDatabase(
		fmt.Sprintf("%s in %s", description, r.cfg.Table),
		pkgErrors.WithContext(kv),
		pkgErrors.WithCause(err),
	)
}
