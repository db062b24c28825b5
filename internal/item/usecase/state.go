package usecase

import (
	"context"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
	"inventory-management/pkg/scope"
)

// Archive moves an active item to the archived state. Archiving an archived
// item is a no-op.
func (uc *implUseCase) Archive(ctx context.Context, sc scope.Scope, id string) (err error) {
	ctx, span := uc.tracer.Start(ctx, "item.Archive")
	defer func() { finishSpan(span, err) }()

	return uc.setArchived(ctx, sc, id, true)
}

// Restore moves an archived item back to the active state. Restoring an
// active item is a no-op.
func (uc *implUseCase) Restore(ctx context.Context, sc scope.Scope, id string) (err error) {
	ctx, span := uc.tracer.Start(ctx, "item.Restore")
	defer func() { finishSpan(span, err) }()

	return uc.setArchived(ctx, sc, id, false)
}

// Delete removes an item permanently, whatever its archive state.
func (uc *implUseCase) Delete(ctx context.Context, sc scope.Scope, id string) (err error) {
	ctx, span := uc.tracer.Start(ctx, "item.Delete")
	defer func() { finishSpan(span, err) }()

	if sc.UserID == "" {
		return item.ErrInvalidScope
	}

	removed, err := uc.repo.DeleteItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	if !removed {
		return item.ErrItemNotFound
	}

	uc.l.Infof(ctx, "item %s deleted by %s", id, sc.UserID)
	return nil
}

func (uc *implUseCase) setArchived(ctx context.Context, sc scope.Scope, id string, archived bool) error {
	if sc.UserID == "" {
		return item.ErrInvalidScope
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.setArchived GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return item.ErrItemNotFound
	}
	if existing.IsArchived == archived {
		return nil
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:                  existing.ID,
		Code:                existing.Code,
		Name:                existing.Name,
		ChartOfAccount:      existing.ChartOfAccount,
		HasProductionNumber: existing.HasProductionNumber,
		HasExpiryDate:       existing.HasExpiryDate,
		Unit:                existing.Unit,
		Converter:           existing.Converter,
		IsArchived:          archived,
		UpdatedAt:           uc.now(),
		UpdatedByID:         sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.setArchived UpdateItem: %v", err)
		return err
	}
	if updated.ID == "" {
		return item.ErrItemNotFound
	}
	return nil
}
