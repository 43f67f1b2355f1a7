package usecase

import (
	"context"

	"api-scaffold/internal/model"
	"api-scaffold/internal/user"
	repo "api-scaffold/internal/user/repository"
)

// Create registers a new User with a bcrypt-hashed password.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (user.CreateOutput, error) {
	role := input.Role
	if role == "" {
		role = model.RoleUser
	}
	if !validRole(role) {
		return user.CreateOutput{}, user.ErrInvalidRole(role)
	}

	email := normalizeEmail(input.Email)
	if err := uc.ensureEmailFree(ctx, email); err != nil {
		return user.CreateOutput{}, err
	}

	hash, err := uc.hashPassword(ctx, input.Password)
	if err != nil {
		return user.CreateOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return user.CreateOutput{}, err
	}
	return user.CreateOutput{User: u}, nil
}
