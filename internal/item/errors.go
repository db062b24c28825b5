package item

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidScope = errors.New("missing caller identity")
)

// Validation messages.
const (
	MsgNameRequired           = "name is required"
	MsgChartOfAccountRequired = "chart of account is required"
	MsgUnitRequired           = "unit is required"
	MsgConverterNameRequired  = "name is required"
	MsgMultiplyRequired       = "multiply is required"
	MsgCodeExists             = "code is exists"
	MsgNameExists             = "name is exists"
)

// Field names as rendered in validation errors.
const (
	FieldCode           = "code"
	FieldName           = "name"
	FieldChartOfAccount = "chartOfAccount"
	FieldUnit           = "unit"
	FieldConverter      = "converter"
)
