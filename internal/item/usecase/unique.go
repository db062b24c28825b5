package usecase

import (
	"context"
	"errors"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
	pkgErrors "inventory-management/pkg/errors"
)

// checkUnique reports code and name values already held by another item.
// Archived items still hold their values. An empty code is never checked; any
// other code, whitespace included, is stored as given and so must be unique.
func (uc *implUseCase) checkUnique(ctx context.Context, code, name, excludeID string) (*pkgErrors.FieldErrors, error) {
	fe := pkgErrors.NewFieldErrors()

	opt := repo.FindConflictsOptions{ExcludeID: excludeID}
	if code != "" {
		opt.Code = code
	}
	if !isBlank(name) {
		opt.Name = name
	}
	if opt.Code == "" && opt.Name == "" {
		return fe, nil
	}

	conflicts, err := uc.repo.FindConflicts(ctx, opt)
	if err != nil {
		return nil, err
	}

	var codeTaken, nameTaken bool
	for _, it := range conflicts {
		if it.ID == excludeID {
			continue
		}
		if opt.Code != "" && it.Code == opt.Code {
			codeTaken = true
		}
		if opt.Name != "" && it.Name == opt.Name {
			nameTaken = true
		}
	}

	if codeTaken {
		fe.Add(item.FieldCode, item.MsgCodeExists)
	}
	if nameTaken {
		fe.Add(item.FieldName, item.MsgNameExists)
	}
	return fe, nil
}

// duplicateKeyError turns a unique index violation raised by the store into
// the same validation error a pre-check would have produced.
func duplicateKeyError(err error) (*pkgErrors.ValidationError, bool) {
	var dup *repo.DuplicateKeyError
	if !errors.As(err, &dup) {
		return nil, false
	}

	fe := pkgErrors.NewFieldErrors()
	switch dup.Field {
	case item.FieldCode:
		fe.Add(item.FieldCode, item.MsgCodeExists)
	case item.FieldName:
		fe.Add(item.FieldName, item.MsgNameExists)
	default:
		return nil, false
	}
	return pkgErrors.NewValidationError(fe), true
}
