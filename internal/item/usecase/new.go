package usecase

import (
	"api-scaffold/internal/item"
	"api-scaffold/internal/item/repository"
	"api-scaffold/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ item.UseCase = (*implUseCase)(nil)

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
