package repository

import (
	"time"

	"inventory-management/internal/item"
)

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Code                string
	Name                string
	ChartOfAccount      string
	HasProductionNumber bool
	HasExpiryDate       bool
	Unit                string
	Converter           []item.Converter
	CreatedAt           time.Time
	CreatedByID         string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID string
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
type ListItemsOptions struct {
	IsArchived *bool
	Search     string
	Limit      int
	Offset     int
}

// UpdateItemOptions replaces every mutable field of the Item with ID.
type UpdateItemOptions struct {
	ID                  string
	Code                string
	Name                string
	ChartOfAccount      string
	HasProductionNumber bool
	HasExpiryDate       bool
	Unit                string
	Converter           []item.Converter
	IsArchived          bool
	UpdatedAt           time.Time
	UpdatedByID         string
}

// FindConflictsOptions holds the candidate unique values. Empty values are
// not matched.
type FindConflictsOptions struct {
	Code      string
	Name      string
	ExcludeID string
}
