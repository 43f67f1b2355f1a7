package postgre

import (
	"context"

	"api-scaffold/internal/model"
	"api-scaffold/internal/user"
	repo "api-scaffold/internal/user/repository"
	"api-scaffold/pkg/database"
	"api-scaffold/pkg/pagination"
	genericRepo "api-scaffold/pkg/repository"

	"github.com/uptrace/bun"
)

// CreateUser inserts a new User row.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	role := opt.Role
	if role == "" {
		role = model.RoleUser
	}
	return r.users.Create(ctx, model.User{
		Email:        opt.Email,
		Name:         opt.Name,
		PasswordHash: opt.PasswordHash,
		Role:         role,
	})
}

// GetOneUser retrieves a single User matching opt.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, bool, error) {
	return r.getOne(ctx, r.users, opt)
}

func (r *implRepository) getOne(ctx context.Context, users *genericRepo.Repository[model.User, int64], opt repo.GetOneUserOptions) (model.User, bool, error) {
	rows, err := users.FindAll(ctx, genericRepo.QueryOptions{
		Pagination: pagination.New(1, 1),
		Where:      r.buildGetOneQuery(opt),
	})
	if err != nil {
		return model.User{}, false, err
	}
	if len(rows) == 0 {
		return model.User{}, false, nil
	}
	return rows[0], true, nil
}

// DetailUser returns the User with id or a NotFound error.
func (r *implRepository) DetailUser(ctx context.Context, id int64) (model.User, error) {
	return r.users.FindByIDOrThrow(ctx, id, user.Resource)
}

// ListUsers returns one page of Users.
func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) (pagination.Result[model.User], error) {
	return r.users.FindAllPaginated(ctx, r.buildListQuery(opt))
}

// UpdateUser applies the non-nil fields of opt. The email check and the write
// share one transaction, and the transaction is retried as a whole.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	values := r.buildUpdateValues(opt)

	u, err := database.WithTransactionRetry(ctx, r.db, func(ctx context.Context, tx bun.Tx) (model.User, error) {
		txUsers := r.users.WithTx(tx)
		if opt.Email != nil {
			_, taken, err := r.getOne(ctx, txUsers, repo.GetOneUserOptions{Email: *opt.Email, ExcludeID: opt.ID})
			if err != nil {
				return model.User{}, err
			}
			if taken {
				return model.User{}, user.ErrDuplicateEmail(*opt.Email)
			}
		}
		return txUsers.UpdateOrThrow(ctx, opt.ID, values, user.Resource)
	}, r.retry...)
	if err != nil {
		r.l.Debugf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, err
	}
	return u, nil
}

// DeleteUser removes the User row.
func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.users.DeleteOrThrow(ctx, id, user.Resource)
}
