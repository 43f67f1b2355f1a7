package repository

import (
	"context"

	"api-scaffold/pkg/database"
	pkgErrors "api-scaffold/pkg/errors"
	"api-scaffold/pkg/pagination"

	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
)

// FindAll returns one page of rows ordered by the sort column.
func (r *Repository[T, K]) FindAll(ctx context.Context, opts QueryOptions) ([]T, error) {
	p, err := pagination.Normalize(opts.Pagination)
	if err != nil {
		return nil, err
	}

	order := "? DESC"
	if opts.ascending() {
		order = "? ASC"
	}

	var rows []T
	q := r.db.NewSelect().Model(&rows)
	q = applyWhere(q, opts.predicate()).
		OrderExpr(order, bun.Ident(r.cfg.SortColumn)).
		Limit(p.Limit).
		Offset(p.Offset)
	if err := q.Scan(ctx); err != nil && !database.IsNoRows(err) {
		return nil, r.storageError(ctx, "FindAll", "Failed to find records", err, nil)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// FindAllPaginated runs FindAll and Count and combines them. On a plain
// *bun.DB the two queries run concurrently and are not tied by a transaction,
// so under concurrent writes total may disagree with the returned page. On a
// repository bound to a transaction they run one after the other, since a
// single tx connection cannot serve two queries at once.
func (r *Repository[T, K]) FindAllPaginated(ctx context.Context, opts QueryOptions) (pagination.Result[T], error) {
	if _, err := pagination.Normalize(opts.Pagination); err != nil {
		return pagination.Result[T]{}, err
	}

	var (
		rows  []T
		total int
	)
	if r.inTx() {
		var err error
		if rows, err = r.FindAll(ctx, opts); err != nil {
			return pagination.Result[T]{}, err
		}
		if total, err = r.Count(ctx, opts.predicate()); err != nil {
			return pagination.Result[T]{}, err
		}
		return r.paginated(rows, total, opts)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = r.FindAll(gctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = r.Count(gctx, opts.predicate())
		return err
	})
	if err := g.Wait(); err != nil {
		return pagination.Result[T]{}, err
	}
	return r.paginated(rows, total, opts)
}

func (r *Repository[T, K]) paginated(rows []T, total int, opts QueryOptions) (pagination.Result[T], error) {
	meta, err := pagination.NewMetadata(total, opts.Pagination)
	if err != nil {
		return pagination.Result[T]{}, err
	}
	return pagination.Result[T]{Data: rows, Pagination: meta}, nil
}

// FindByID returns the row with the given id. found is false when no row matches.
func (r *Repository[T, K]) FindByID(ctx context.Context, id K) (T, bool, error) {
	var row T
	err := r.db.NewSelect().
		Model(&row).
		Where("? = ?", bun.Ident(r.cfg.IDColumn), id).
		Limit(1).
		Scan(ctx)
	if database.IsNoRows(err) {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		var zero T
		return zero, false, r.storageError(ctx, "FindByID", "Failed to find record", err, map[string]any{"id": id})
	}
	return row, true, nil
}

// FindByIDOrThrow is FindByID with absence reported as NotFound.
// resource names the entity in the error and defaults to the table name.
func (r *Repository[T, K]) FindByIDOrThrow(ctx context.Context, id K, resource string) (T, error) {
	row, found, err := r.FindByID(ctx, id)
	if err != nil {
		return row, err
	}
	if !found {
		return row, pkgErrors.NewNotFound(r.resource(resource), id)
	}
	return row, nil
}

// Count returns the number of rows matching where. A nil where counts all rows.
func (r *Repository[T, K]) Count(ctx context.Context, where Where) (int, error) {
	q := r.db.NewSelect().Model((*T)(nil))
	n, err := applyWhere(q, where).Count(ctx)
	if err != nil {
		if database.IsNoRows(err) {
			return 0, nil
		}
		return 0, r.storageError(ctx, "Count", "Failed to count records", err, nil)
	}
	return n, nil
}

// Exists reports whether a row with id exists.
func (r *Repository[T, K]) Exists(ctx context.Context, id K) (bool, error) {
	_, found, err := r.FindByID(ctx, id)
	return found, err
}
