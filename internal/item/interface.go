package item

import (
	"context"

	"inventory-management/pkg/scope"
)

// UseCase owns the item lifecycle. Every call receives the verified caller
// identity explicitly; authorization has already been decided upstream.
type UseCase interface {
	Create(ctx context.Context, sc scope.Scope, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context, sc scope.Scope, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, sc scope.Scope, id string) (DetailItemOutput, error)
	Update(ctx context.Context, sc scope.Scope, input UpdateItemInput) error

	// State machine
	Archive(ctx context.Context, sc scope.Scope, id string) error
	Restore(ctx context.Context, sc scope.Scope, id string) error
	Delete(ctx context.Context, sc scope.Scope, id string) error
}
