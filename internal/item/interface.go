package item

import (
	"context"

	"api-scaffold/pkg/scope"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	CreateBulk(ctx context.Context, inputs []CreateInput) (CreateBulkOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	// Update, Delete and UpdateStatusBulk are allowed for the item owner and admins.
	Update(ctx context.Context, sc scope.Payload, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc scope.Payload, id int64) error
	UpdateStatusBulk(ctx context.Context, sc scope.Payload, input UpdateStatusBulkInput) (UpdateStatusBulkOutput, error)
}
