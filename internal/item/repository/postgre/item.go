package postgre

import (
	"context"

	"api-scaffold/internal/item"
	repo "api-scaffold/internal/item/repository"
	"api-scaffold/internal/model"
	"api-scaffold/pkg/database"
	"api-scaffold/pkg/pagination"
	genericRepo "api-scaffold/pkg/repository"

	"github.com/uptrace/bun"
)

func toModel(opt repo.CreateItemOptions) model.Item {
	status := opt.Status
	if status == "" {
		status = model.ItemStatusActive
	}
	return model.Item{
		OwnerID:     opt.OwnerID,
		Name:        opt.Name,
		Description: opt.Description,
		Status:      status,
	}
}

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	return r.items.Create(ctx, toModel(opt))
}

// CreateItems inserts all rows in one transaction.
func (r *implRepository) CreateItems(ctx context.Context, opts []repo.CreateItemOptions) ([]model.Item, error) {
	rows := make([]model.Item, 0, len(opts))
	for _, opt := range opts {
		rows = append(rows, toModel(opt))
	}
	return r.items.CreateMany(ctx, rows)
}

// GetOneItem retrieves a single live Item matching opt.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, bool, error) {
	rows, err := r.items.FindAll(ctx, genericRepo.QueryOptions{
		Pagination: pagination.New(1, 1),
		Where:      r.buildGetOneQuery(opt),
	})
	if err != nil {
		return model.Item{}, false, err
	}
	if len(rows) == 0 {
		return model.Item{}, false, nil
	}
	return rows[0], true, nil
}

// DetailItem returns the live Item with id or a NotFound error.
func (r *implRepository) DetailItem(ctx context.Context, id int64) (model.Item, error) {
	it, err := r.items.FindByIDOrThrow(ctx, id, item.Resource)
	if err != nil {
		return model.Item{}, err
	}
	if it.IsDeleted() {
		return model.Item{}, notFound(id)
	}
	return it, nil
}

// ListItems returns one page of live Items.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) (pagination.Result[model.Item], error) {
	return r.items.FindAllPaginated(ctx, r.buildListQuery(opt))
}

// UpdateItem applies the non-nil fields of opt.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	return r.items.UpdateOrThrow(ctx, opt.ID, r.buildUpdateValues(opt), item.Resource)
}

// SoftDeleteItem stamps deleted_at on the Item.
func (r *implRepository) SoftDeleteItem(ctx context.Context, id int64) error {
	_, found, err := r.items.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFound(id)
	}
	return nil
}

// UpdateItemsStatus sets status on every id inside one transaction.
func (r *implRepository) UpdateItemsStatus(ctx context.Context, opt repo.UpdateItemsStatusOptions) ([]model.Item, error) {
	ops := make([]database.TxFunc[model.Item], 0, len(opt.IDs))
	for _, id := range opt.IDs {
		ops = append(ops, func(ctx context.Context, tx bun.Tx) (model.Item, error) {
			txItems := r.items.WithTx(tx)
			existing, found, err := txItems.FindByID(ctx, id)
			if err != nil {
				return model.Item{}, err
			}
			if !found || existing.IsDeleted() {
				return model.Item{}, notFound(id)
			}
			if opt.OwnerID != nil && !existing.OwnedBy(*opt.OwnerID) {
				return model.Item{}, item.ErrNotOwner(id)
			}
			return txItems.UpdateOrThrow(ctx, id, genericRepo.Values{"status": opt.Status}, item.Resource)
		})
	}

	items, err := database.ExecuteInTransaction(ctx, r.db, ops...)
	if err != nil {
		r.l.Debugf(ctx, "%s: %v", r.dsn("UpdateItemsStatus"), err)
		return nil, err
	}
	return items, nil
}
