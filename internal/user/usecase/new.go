package usecase

import (
	"api-scaffold/internal/user"
	"api-scaffold/internal/user/repository"
	"api-scaffold/pkg/log"
	"api-scaffold/pkg/scope"

	"golang.org/x/crypto/bcrypt"
)

const tokenType = "Bearer"

type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	l          log.Logger
	hashCost   int
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(repo repository.Repository, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
		hashCost:   bcrypt.DefaultCost,
	}
}
