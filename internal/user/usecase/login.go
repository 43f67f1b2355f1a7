package usecase

import (
	"context"

	"api-scaffold/internal/user"
	repo "api-scaffold/internal/user/repository"
	pkgErrors "api-scaffold/pkg/errors"
	"api-scaffold/pkg/scope"

	"golang.org/x/crypto/bcrypt"
)

// Login checks the credentials and issues an access token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	u, found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: normalizeEmail(input.Email)})
	if err != nil {
		return user.LoginOutput{}, err
	}
	if !found {
		return user.LoginOutput{}, user.ErrInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		uc.l.Infof(ctx, "uc.Login: password mismatch for user %d", u.ID)
		return user.LoginOutput{}, user.ErrInvalidCredentials()
	}

	token, err := uc.jwtManager.CreateToken(scope.Payload{UserID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		return user.LoginOutput{}, pkgErrors.New(pkgErrors.KindInternal, "Failed to issue token", pkgErrors.WithCause(err))
	}
	return user.LoginOutput{User: u, AccessToken: token, TokenType: tokenType}, nil
}
