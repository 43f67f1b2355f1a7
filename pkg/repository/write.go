package repository

import (
	"context"
	"errors"
	"time"

	"api-scaffold/pkg/database"
	pkgErrors "api-scaffold/pkg/errors"

	"github.com/uptrace/bun"
)

var errNoRowReturned = errors.New("insert returned no row")

// Create inserts data and returns the stored row with generated columns filled in.
func (r *Repository[T, K]) Create(ctx context.Context, data T) (T, error) {
	row := data
	res, err := r.db.NewInsert().Model(&row).Returning("*").Exec(ctx)
	if err != nil {
		var zero T
		return zero, r.storageError(ctx, "Create", "Failed to create record", err, map[string]any{"data": data})
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var zero T
		return zero, r.storageError(ctx, "Create", "Failed to create record", errNoRowReturned, map[string]any{"data": data})
	}
	return row, nil
}

// CreateMany inserts every row in one transaction. Any failure rolls back the batch.
func (r *Repository[T, K]) CreateMany(ctx context.Context, data []T) ([]T, error) {
	rows, err := database.WithTransaction(ctx, r.db, func(ctx context.Context, tx bun.Tx) ([]T, error) {
		txRepo := r.WithTx(tx)
		out := make([]T, 0, len(data))
		for _, d := range data {
			row, err := txRepo.Create(ctx, d)
			if err != nil {
				return nil, err
			}
			out = append(out, row)
		}
		return out, nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMany"), err)
		return nil, pkgErrors.NewDatabase(
			"Failed to create records in "+r.cfg.Table,
			pkgErrors.WithField("table", r.cfg.Table),
			pkgErrors.WithField("count", len(data)),
			pkgErrors.WithCause(err),
		)
	}
	return rows, nil
}

// Update sets values plus a fresh updated-at timestamp on the row with id.
// found is false when no row matches.
func (r *Repository[T, K]) Update(ctx context.Context, id K, values Values) (T, bool, error) {
	var row T
	q := r.db.NewUpdate().
		Model(&row).
		Set("? = ?", bun.Ident(r.cfg.UpdatedAtColumn), time.Now().UTC())
	for col, v := range values {
		if col == r.cfg.UpdatedAtColumn {
			continue
		}
		q = q.Set("? = ?", bun.Ident(col), v)
	}

	res, err := q.Where("? = ?", bun.Ident(r.cfg.IDColumn), id).Returning("*").Exec(ctx)
	if database.IsNoRows(err) {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		var zero T
		return zero, false, r.storageError(ctx, "Update", "Failed to update record", err, map[string]any{"id": id, "data": values})
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var zero T
		return zero, false, nil
	}
	return row, true, nil
}

// UpdateOrThrow is Update with absence reported as NotFound.
func (r *Repository[T, K]) UpdateOrThrow(ctx context.Context, id K, values Values, resource string) (T, error) {
	row, found, err := r.Update(ctx, id, values)
	if err != nil {
		return row, err
	}
	if !found {
		return row, pkgErrors.NewNotFound(r.resource(resource), id)
	}
	return row, nil
}

// Delete removes the row with id and reports whether one was removed.
func (r *Repository[T, K]) Delete(ctx context.Context, id K) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*T)(nil)).
		Where("? = ?", bun.Ident(r.cfg.IDColumn), id).
		Exec(ctx)
	if err != nil {
		return false, r.storageError(ctx, "Delete", "Failed to delete record", err, map[string]any{"id": id})
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, r.storageError(ctx, "Delete", "Failed to delete record", err, map[string]any{"id": id})
	}
	return n > 0, nil
}

// DeleteOrThrow is Delete with a no-op reported as NotFound.
func (r *Repository[T, K]) DeleteOrThrow(ctx context.Context, id K, resource string) error {
	deleted, err := r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return pkgErrors.NewNotFound(r.resource(resource), id)
	}
	return nil
}

// SoftDelete stamps the deleted-at column instead of removing the row.
func (r *Repository[T, K]) SoftDelete(ctx context.Context, id K) (T, bool, error) {
	return r.Update(ctx, id, Values{r.cfg.DeletedAtColumn: time.Now().UTC()})
}
