package repository

import (
	"context"

	"api-scaffold/internal/model"
	"api-scaffold/pkg/pagination"
)

// Repository is the data store of the item domain. Soft-deleted items are
// invisible to every read.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	CreateItems(ctx context.Context, opts []CreateItemOptions) ([]model.Item, error)
	// GetOneItem returns found=false when nothing matches.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, bool, error)
	// DetailItem fails with NotFound when the item is missing.
	DetailItem(ctx context.Context, id int64) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) (pagination.Result[model.Item], error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	SoftDeleteItem(ctx context.Context, id int64) error
	// UpdateItemsStatus updates every id in one transaction. A missing id, or
	// one owned by someone other than opt.OwnerID, rolls back all of them.
	UpdateItemsStatus(ctx context.Context, opt UpdateItemsStatusOptions) ([]model.Item, error)
}
