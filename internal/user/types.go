package user

import (
	"api-scaffold/internal/model"
	"api-scaffold/pkg/pagination"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Email    string
	Name     string
	Password string
	Role     string
}

type ListInput struct {
	Role       string
	Pagination pagination.Options
	SortOrder  string
}

type UpdateInput struct {
	ID       int64
	Email    *string
	Name     *string
	Password *string
	Role     *string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	User model.User
}

type ListOutput struct {
	Users      []model.User
	Pagination pagination.Metadata
}

type DetailOutput struct {
	User model.User
}

type UpdateOutput struct {
	User model.User
}

type LoginOutput struct {
	User        model.User
	AccessToken string
	TokenType   string
}
