package repository

import "api-scaffold/pkg/pagination"

// CreateUserOptions holds parameters for inserting a new User.
// PasswordHash must already be hashed.
type CreateUserOptions struct {
	Email        string
	Name         string
	PasswordHash string
	Role         string
}

// GetOneUserOptions holds filters for fetching a single User.
type GetOneUserOptions struct {
	ID        int64
	Email     string
	ExcludeID int64
}

type ListUsersOptions struct {
	Role       string
	Pagination pagination.Options
	SortOrder  string
}

// UpdateUserOptions holds the fields to change. Nil fields are left untouched.
type UpdateUserOptions struct {
	ID           int64
	Email        *string
	Name         *string
	PasswordHash *string
	Role         *string
}
