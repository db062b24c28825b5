package repository

import (
	"context"

	"inventory-management/internal/user"
)

// Repository is the read-only user store.
type Repository interface {
	// GetOneUser returns a zero User (ID == "") when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
}
