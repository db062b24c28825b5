package usecase

import (
	"context"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/scope"
)

// Update applies a patch to an existing Item. The merged record is validated
// like a create payload and checked for uniqueness against every other item.
// A patch without any field is validated as a full, empty payload. The
// archive flag is never touched here.
func (uc *implUseCase) Update(ctx context.Context, sc scope.Scope, input item.UpdateItemInput) (err error) {
	ctx, span := uc.tracer.Start(ctx, "item.Update")
	defer func() { finishSpan(span, err) }()

	if sc.UserID == "" {
		return item.ErrInvalidScope
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return item.ErrItemNotFound
	}

	if input.IsEmpty() {
		return pkgErrors.NewValidationError(uc.validateCandidate(candidate{}))
	}

	merged := candidate{
		Code:                coalesce(input.Code, existing.Code),
		Name:                coalesce(input.Name, existing.Name),
		ChartOfAccount:      coalesce(input.ChartOfAccount, existing.ChartOfAccount),
		HasProductionNumber: coalesce(input.HasProductionNumber, existing.HasProductionNumber),
		HasExpiryDate:       coalesce(input.HasExpiryDate, existing.HasExpiryDate),
		Unit:                coalesce(input.Unit, existing.Unit),
		Converter:           coalesce(input.Converter, toConverterInputs(existing.Converter)),
	}

	fe := uc.validateCandidate(merged)
	unique, err := uc.checkUnique(ctx, merged.Code, merged.Name, existing.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update checkUnique: %v", err)
		return err
	}
	fe.Merge(unique)
	if !fe.Empty() {
		return pkgErrors.NewValidationError(fe)
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:                  existing.ID,
		Code:                merged.Code,
		Name:                merged.Name,
		ChartOfAccount:      merged.ChartOfAccount,
		HasProductionNumber: merged.HasProductionNumber,
		HasExpiryDate:       merged.HasExpiryDate,
		Unit:                merged.Unit,
		Converter:           toConverters(merged.Converter),
		IsArchived:          existing.IsArchived,
		UpdatedAt:           uc.now(),
		UpdatedByID:         sc.UserID,
	})
	if err != nil {
		if verr, ok := duplicateKeyError(err); ok {
			uc.l.Warnf(ctx, "uc.Update UpdateItem lost uniqueness race: %v", err)
			return verr
		}
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return err
	}
	if updated.ID == "" {
		return item.ErrItemNotFound
	}
	return nil
}
