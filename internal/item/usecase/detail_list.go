package usecase

import (
	"context"
	"strings"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
	"inventory-management/pkg/paginator"
	"inventory-management/pkg/scope"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc scope.Scope, id string) (out item.DetailItemOutput, err error) {
	ctx, span := uc.tracer.Start(ctx, "item.Detail")
	defer func() { finishSpan(span, err) }()

	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if it.ID == "" {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// List returns one page of non-deleted items, archived ones included unless
// filtered out, with pagination metadata computed from the total count.
func (uc *implUseCase) List(ctx context.Context, sc scope.Scope, input item.ListItemsInput) (out item.ListItemsOutput, err error) {
	ctx, span := uc.tracer.Start(ctx, "item.List")
	defer func() { finishSpan(span, err) }()

	q := input.Pagination.Normalize()
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		IsArchived: input.IsArchived,
		Search:     strings.TrimSpace(input.Search),
		Limit:      q.Limit(),
		Offset:     q.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}
	if items == nil {
		items = []item.Item{}
	}

	return item.ListItemsOutput{
		Items:      items,
		Pagination: paginator.New(q, total),
	}, nil
}
