package usecase

import (
	"context"

	"api-scaffold/internal/user"
	repo "api-scaffold/internal/user/repository"
)

// Update modifies an existing User. A new password is hashed before it is
// stored.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) (user.UpdateOutput, error) {
	if input.Role != nil && !validRole(*input.Role) {
		return user.UpdateOutput{}, user.ErrInvalidRole(*input.Role)
	}

	opt := repo.UpdateUserOptions{
		ID:   input.ID,
		Name: input.Name,
		Role: input.Role,
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		opt.Email = &email
	}
	if input.Password != nil {
		hash, err := uc.hashPassword(ctx, *input.Password)
		if err != nil {
			return user.UpdateOutput{}, err
		}
		opt.PasswordHash = &hash
	}

	u, err := uc.repo.UpdateUser(ctx, opt)
	if err != nil {
		return user.UpdateOutput{}, err
	}
	return user.UpdateOutput{User: u}, nil
}

// Delete removes a User by ID.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	return nil
}
