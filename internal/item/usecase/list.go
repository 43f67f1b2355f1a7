package usecase

import (
	"context"

	"api-scaffold/internal/item"
	repo "api-scaffold/internal/item/repository"
)

// List returns a paginated list of live Items.
func (uc *implUseCase) List(ctx context.Context, input item.ListInput) (item.ListOutput, error) {
	if input.Status != "" && !validStatus(input.Status) {
		return item.ListOutput{}, item.ErrInvalidStatus(input.Status)
	}

	res, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Status:     input.Status,
		OwnerID:    input.OwnerID,
		Pagination: input.Pagination,
		SortOrder:  input.SortOrder,
	})
	if err != nil {
		return item.ListOutput{}, err
	}

	return item.ListOutput{
		Items:      res.Data,
		Pagination: res.Pagination,
	}, nil
}
