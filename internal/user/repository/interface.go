package repository

import (
	"context"

	"api-scaffold/internal/model"
	"api-scaffold/pkg/pagination"
)

type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	// GetOneUser returns found=false when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, bool, error)
	DetailUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context, opt ListUsersOptions) (pagination.Result[model.User], error)
	// UpdateUser checks email ownership and writes the change in one
	// transaction, retrying the whole transaction on failure.
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
