package repository

import (
	"context"

	"inventory-management/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
//
// Every store enforces unique indexes on name and on non-empty code, and
// reports a violation as *DuplicateKeyError.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	// GetOneItem returns a zero Item (ID == "") when nothing matches.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, int64, error)
	// UpdateItem returns a zero Item when the id no longer exists.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	// DeleteItem reports whether a record was removed.
	DeleteItem(ctx context.Context, id string) (bool, error)
	// FindConflicts returns items other than ExcludeID sharing Code or Name.
	FindConflicts(ctx context.Context, opt FindConflictsOptions) ([]item.Item, error)
}
