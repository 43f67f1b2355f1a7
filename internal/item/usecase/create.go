package usecase

import (
	"context"

	"api-scaffold/internal/item"
	repo "api-scaffold/internal/item/repository"
	pkgErrors "api-scaffold/pkg/errors"
)

// Create creates a new Item after checking for name uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateInput) (item.CreateOutput, error) {
	if input.Status != "" && !validStatus(input.Status) {
		return item.CreateOutput{}, item.ErrInvalidStatus(input.Status)
	}
	if err := uc.ensureNameFree(ctx, input.Name, 0); err != nil {
		return item.CreateOutput{}, err
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	})
	if err != nil {
		return item.CreateOutput{}, err
	}

	return item.CreateOutput{Item: it}, nil
}

// CreateBulk creates all items or none. Names must be unique within the batch and in storage.
func (uc *implUseCase) CreateBulk(ctx context.Context, inputs []item.CreateInput) (item.CreateBulkOutput, error) {
	if len(inputs) == 0 {
		return item.CreateBulkOutput{}, pkgErrors.NewValidation("at least one item is required")
	}

	seen := make(map[string]struct{}, len(inputs))
	opts := make([]repo.CreateItemOptions, 0, len(inputs))
	for _, in := range inputs {
		if in.Status != "" && !validStatus(in.Status) {
			return item.CreateBulkOutput{}, item.ErrInvalidStatus(in.Status)
		}
		if _, dup := seen[in.Name]; dup {
			return item.CreateBulkOutput{}, item.ErrDuplicateName(in.Name)
		}
		seen[in.Name] = struct{}{}

		if err := uc.ensureNameFree(ctx, in.Name, 0); err != nil {
			return item.CreateBulkOutput{}, err
		}
		opts = append(opts, repo.CreateItemOptions{
			OwnerID:     in.OwnerID,
			Name:        in.Name,
			Description: in.Description,
			Status:      in.Status,
		})
	}

	items, err := uc.repo.CreateItems(ctx, opts)
	if err != nil {
		return item.CreateBulkOutput{}, err
	}
	return item.CreateBulkOutput{Items: items}, nil
}
