package item

import (
	"api-scaffold/internal/model"
	"api-scaffold/pkg/pagination"
)

// --- UseCase Inputs ---

type CreateInput struct {
	OwnerID     *int64
	Name        string
	Description string
	Status      string
}

type ListInput struct {
	Status     string
	OwnerID    *int64
	Pagination pagination.Options
	SortOrder  string
}

type UpdateInput struct {
	ID          int64
	Name        *string
	Description *string
	Status      *string
}

type UpdateStatusBulkInput struct {
	IDs    []int64
	Status string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Item model.Item
}

type CreateBulkOutput struct {
	Items []model.Item
}

type ListOutput struct {
	Items      []model.Item
	Pagination pagination.Metadata
}

type DetailOutput struct {
	Item model.Item
}

type UpdateOutput struct {
	Item model.Item
}

type UpdateStatusBulkOutput struct {
	Items []model.Item
}
