package usecase

import (
	"context"
	"strings"

	"api-scaffold/internal/model"
	"api-scaffold/internal/user"
	repo "api-scaffold/internal/user/repository"
	pkgErrors "api-scaffold/pkg/errors"

	"golang.org/x/crypto/bcrypt"
)

func validRole(role string) bool {
	return role == model.RoleUser || role == model.RoleAdmin
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *implUseCase) hashPassword(ctx context.Context, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.hashCost)
	if err != nil {
		return "", pkgErrors.NewValidation("password cannot be hashed", pkgErrors.WithCause(err))
	}
	return string(hash), nil
}

// ensureEmailFree fails with Conflict when the email is registered.
func (uc *implUseCase) ensureEmailFree(ctx context.Context, email string) error {
	_, found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		return err
	}
	if found {
		return user.ErrDuplicateEmail(email)
	}
	return nil
}
