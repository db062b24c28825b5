package item

import (
	"time"

	"inventory-management/pkg/paginator"
)

// --- Item Domain Model ---

// Converter is an alternate unit of measure with its multiplier relative to
// the item's base unit.
type Converter struct {
	Name     string
	Multiply float64
}

// Item is a catalog record for a trackable inventory unit type.
type Item struct {
	ID                  string
	Code                string
	Name                string
	ChartOfAccount      string
	HasProductionNumber bool
	HasExpiryDate       bool
	Unit                string
	Converter           []Converter
	IsArchived          bool
	CreatedAt           time.Time
	CreatedByID         string
	UpdatedAt           *time.Time
	UpdatedByID         string
}

// --- UseCase Inputs ---

// ConverterInput is a converter entry as received. A nil Multiply means the
// caller did not send one.
type ConverterInput struct {
	Name     string
	Multiply *float64
}

type CreateItemInput struct {
	Code                string
	Name                string
	ChartOfAccount      string
	HasProductionNumber bool
	HasExpiryDate       bool
	Unit                string
	Converter           []ConverterInput
}

type ListItemsInput struct {
	Pagination paginator.Query
	IsArchived *bool
	Search     string
}

// UpdateItemInput is a patch: nil fields are left unchanged.
type UpdateItemInput struct {
	ID                  string
	Code                *string
	Name                *string
	ChartOfAccount      *string
	HasProductionNumber *bool
	HasExpiryDate       *bool
	Unit                *string
	Converter           *[]ConverterInput
}

// IsEmpty reports whether the patch sets no field at all.
func (in UpdateItemInput) IsEmpty() bool {
	return in.Code == nil && in.Name == nil && in.ChartOfAccount == nil &&
		in.HasProductionNumber == nil && in.HasExpiryDate == nil &&
		in.Unit == nil && in.Converter == nil
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items      []Item
	Pagination paginator.Pagination
}

type DetailItemOutput struct {
	Item Item
}
