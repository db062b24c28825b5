package usecase

import (
	"fmt"
	"strings"

	"inventory-management/internal/item"
	pkgErrors "inventory-management/pkg/errors"
)

// candidate is the record a create or update would store.
type candidate struct {
	Code                string
	Name                string
	ChartOfAccount      string
	HasProductionNumber bool
	HasExpiryDate       bool
	Unit                string
	Converter           []item.ConverterInput
}

// validateCandidate checks required fields and converter shape. Violations
// are recorded in field declaration order.
func (uc *implUseCase) validateCandidate(c candidate) *pkgErrors.FieldErrors {
	fe := pkgErrors.NewFieldErrors()

	if isBlank(c.Name) {
		fe.Add(item.FieldName, item.MsgNameRequired)
	}
	if isBlank(c.ChartOfAccount) {
		fe.Add(item.FieldChartOfAccount, item.MsgChartOfAccountRequired)
	}
	if isBlank(c.Unit) {
		fe.Add(item.FieldUnit, item.MsgUnitRequired)
	}
	for i, conv := range c.Converter {
		if isBlank(conv.Name) {
			fe.Add(fmt.Sprintf("%s.%d.name", item.FieldConverter, i), item.MsgConverterNameRequired)
		}
		if conv.Multiply == nil {
			fe.Add(fmt.Sprintf("%s.%d.multiply", item.FieldConverter, i), item.MsgMultiplyRequired)
		}
	}

	return fe
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
