package usecase

import (
	"context"

	"api-scaffold/internal/user"
	repo "api-scaffold/internal/user/repository"
)

// List returns a page of Users.
func (uc *implUseCase) List(ctx context.Context, input user.ListInput) (user.ListOutput, error) {
	if input.Role != "" && !validRole(input.Role) {
		return user.ListOutput{}, user.ErrInvalidRole(input.Role)
	}

	res, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{
		Role:       input.Role,
		Pagination: input.Pagination,
		SortOrder:  input.SortOrder,
	})
	if err != nil {
		return user.ListOutput{}, err
	}
	return user.ListOutput{Users: res.Data, Pagination: res.Pagination}, nil
}

// Detail retrieves a single User by ID.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (user.DetailOutput, error) {
	u, err := uc.repo.DetailUser(ctx, id)
	if err != nil {
		return user.DetailOutput{}, err
	}
	return user.DetailOutput{User: u}, nil
}
