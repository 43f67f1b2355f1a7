package repository

import "api-scaffold/pkg/pagination"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	OwnerID     *int64
	Name        string
	Description string
	Status      string
}

// GetOneItemOptions holds filters for fetching a single Item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID        int64
	Name      string
	ExcludeID int64
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
type ListItemsOptions struct {
	Status     string
	OwnerID    *int64
	Pagination pagination.Options
	SortOrder  string
}

// UpdateItemsStatusOptions holds the ids to change and their new status.
// A non-nil OwnerID restricts the change to items owned by that user.
type UpdateItemsStatusOptions struct {
	IDs     []int64
	Status  string
	OwnerID *int64
}

// UpdateItemOptions holds the fields to change. Nil fields are left untouched.
type UpdateItemOptions struct {
	ID          int64
	Name        *string
	Description *string
	Status      *string
}
