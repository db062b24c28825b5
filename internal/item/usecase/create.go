package usecase

import (
	"context"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/scope"
)

// Create validates the payload, checks code/name uniqueness and persists a
// new active item stamped with the caller as creator. Nothing is written
// when either check fails.
func (uc *implUseCase) Create(ctx context.Context, sc scope.Scope, input item.CreateItemInput) (out item.CreateItemOutput, err error) {
	ctx, span := uc.tracer.Start(ctx, "item.Create")
	defer func() { finishSpan(span, err) }()

	if sc.UserID == "" {
		return item.CreateItemOutput{}, item.ErrInvalidScope
	}

	fe := uc.validateCandidate(candidate{
		Code:           input.Code,
		Name:           input.Name,
		ChartOfAccount: input.ChartOfAccount,
		Unit:           input.Unit,
		Converter:      input.Converter,
	})

	unique, err := uc.checkUnique(ctx, input.Code, input.Name, "")
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create checkUnique: %v", err)
		return item.CreateItemOutput{}, err
	}
	fe.Merge(unique)
	if !fe.Empty() {
		return item.CreateItemOutput{}, pkgErrors.NewValidationError(fe)
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Code:                input.Code,
		Name:                input.Name,
		ChartOfAccount:      input.ChartOfAccount,
		HasProductionNumber: input.HasProductionNumber,
		HasExpiryDate:       input.HasExpiryDate,
		Unit:                input.Unit,
		Converter:           toConverters(input.Converter),
		CreatedAt:           uc.now(),
		CreatedByID:         sc.UserID,
	})
	if err != nil {
		if verr, ok := duplicateKeyError(err); ok {
			uc.l.Warnf(ctx, "uc.Create CreateItem lost uniqueness race: %v", err)
			return item.CreateItemOutput{}, verr
		}
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	uc.l.Infof(ctx, "item %s created by %s", created.ID, sc.UserID)
	return item.CreateItemOutput{Item: created}, nil
}
