package usecase

import (
	"context"

	"api-scaffold/internal/item"
	repo "api-scaffold/internal/item/repository"
	pkgErrors "api-scaffold/pkg/errors"
	"api-scaffold/pkg/scope"
)

// Detail retrieves a single Item by ID.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.DetailOutput, error) {
	it, err := uc.repo.DetailItem(ctx, id)
	if err != nil {
		return item.DetailOutput{}, err
	}
	return item.DetailOutput{Item: it}, nil
}

// Update modifies an existing Item. Only the given fields change.
func (uc *implUseCase) Update(ctx context.Context, sc scope.Payload, input item.UpdateInput) (item.UpdateOutput, error) {
	if input.Status != nil && !validStatus(*input.Status) {
		return item.UpdateOutput{}, item.ErrInvalidStatus(*input.Status)
	}

	existing, err := uc.repo.DetailItem(ctx, input.ID)
	if err != nil {
		return item.UpdateOutput{}, err
	}
	if !canModify(sc, existing) {
		return item.UpdateOutput{}, item.ErrNotOwner(input.ID)
	}
	if input.Name != nil && *input.Name != existing.Name {
		if err := uc.ensureNameFree(ctx, *input.Name, input.ID); err != nil {
			return item.UpdateOutput{}, err
		}
	}

	it, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	})
	if err != nil {
		return item.UpdateOutput{}, err
	}
	return item.UpdateOutput{Item: it}, nil
}

// Delete soft deletes an Item by ID.
func (uc *implUseCase) Delete(ctx context.Context, sc scope.Payload, id int64) error {
	existing, err := uc.repo.DetailItem(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(sc, existing) {
		return item.ErrNotOwner(id)
	}
	if err := uc.repo.SoftDeleteItem(ctx, id); err != nil {
		return err
	}
	uc.l.Infof(ctx, "uc.Delete: item %d deleted by user %d", id, sc.UserID)
	return nil
}

// UpdateStatusBulk sets one status on many items atomically.
func (uc *implUseCase) UpdateStatusBulk(ctx context.Context, sc scope.Payload, input item.UpdateStatusBulkInput) (item.UpdateStatusBulkOutput, error) {
	if !validStatus(input.Status) {
		return item.UpdateStatusBulkOutput{}, item.ErrInvalidStatus(input.Status)
	}
	if len(input.IDs) == 0 {
		return item.UpdateStatusBulkOutput{}, pkgErrors.NewValidation("at least one id is required")
	}

	opt := repo.UpdateItemsStatusOptions{IDs: input.IDs, Status: input.Status}
	if !isAdmin(sc) {
		opt.OwnerID = &sc.UserID
	}
	items, err := uc.repo.UpdateItemsStatus(ctx, opt)
	if err != nil {
		return item.UpdateStatusBulkOutput{}, err
	}
	return item.UpdateStatusBulkOutput{Items: items}, nil
}
