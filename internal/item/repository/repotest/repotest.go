// Package repotest holds behaviour checks every item Repository must pass.
package repotest

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
	"inventory-management/pkg/paginator"
)

// Factory returns an empty Repository for one subtest.
type Factory func(t *testing.T) repo.Repository

// Run executes the shared checks against repositories built by newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Run("create and get", func(t *testing.T) { testCreateAndGet(t, newRepo(t)) })
	t.Run("unique indexes", func(t *testing.T) { testUnique(t, newRepo(t)) })
	t.Run("update and delete", func(t *testing.T) { testUpdateDelete(t, newRepo(t)) })
	t.Run("list", func(t *testing.T) { testList(t, newRepo(t)) })
}

func opts(code, name string, at time.Time) repo.CreateItemOptions {
	return repo.CreateItemOptions{
		Code:           code,
		Name:           name,
		ChartOfAccount: "coa-1",
		Unit:           "pcs",
		Converter:      []item.Converter{{Name: "box", Multiply: 12}, {Name: "pack", Multiply: 0.5}},
		CreatedAt:      at,
		CreatedByID:    "user-1",
	}
}

func testCreateAndGet(t *testing.T, r repo.Repository) {
	ctx := context.Background()
	at := time.Date(2026, 5, 2, 8, 30, 0, 250_000_000, time.UTC)

	created, err := r.CreateItem(ctx, opts("A-1", "Apple", at))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.CreatedAt.Equal(at))
	assert.Len(t, created.Converter, 2)

	got, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Apple", got.Name)
	assert.Equal(t, created.Converter, got.Converter)
	assert.Nil(t, got.UpdatedAt)

	missing, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: "000000000000000000000000"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func testUnique(t *testing.T, r repo.Repository) {
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := r.CreateItem(ctx, opts("A-1", "Apple", now))
	require.NoError(t, err)

	var dup *repo.DuplicateKeyError
	_, err = r.CreateItem(ctx, opts("A-1", "Pear", now))
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, item.FieldCode, dup.Field)

	_, err = r.CreateItem(ctx, opts("", "Apple", now))
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, item.FieldName, dup.Field)

	_, err = r.CreateItem(ctx, opts("", "Pear", now))
	require.NoError(t, err)
	_, err = r.CreateItem(ctx, opts("", "Plum", now))
	require.NoError(t, err)

	conflicts, err := r.FindConflicts(ctx, repo.FindConflictsOptions{Code: "A-1", Name: "Pear"})
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)
}

func testUpdateDelete(t *testing.T, r repo.Repository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	created, err := r.CreateItem(ctx, opts("A-1", "Apple", now))
	require.NoError(t, err)

	updated, err := r.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:             created.ID,
		Code:           "A-1",
		Name:           "Apple",
		ChartOfAccount: "coa-9",
		Unit:           "kg",
		IsArchived:     true,
		UpdatedAt:      now.Add(time.Second),
		UpdatedByID:    "user-2",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsArchived)
	assert.Equal(t, "coa-9", updated.ChartOfAccount)
	assert.Empty(t, updated.Converter)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, "user-2", updated.UpdatedByID)

	ok, err := r.DeleteItem(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.DeleteItem(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	gone, err := r.UpdateItem(ctx, repo.UpdateItemOptions{ID: created.ID, Name: "Apple", UpdatedAt: now})
	require.NoError(t, err)
	assert.Empty(t, gone.ID)

	_, err = r.CreateItem(ctx, opts("A-1", "Apple", now))
	require.NoError(t, err, "deleted values must be free again")
}

func testList(t *testing.T, r repo.Repository) {
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i, name := range []string{"Apple", "Banana", "Cherry", "Apricot"} {
		it, err := r.CreateItem(ctx, opts("", name, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
		ids = append(ids, it.ID)
	}
	_, err := r.UpdateItem(ctx, repo.UpdateItemOptions{
		ID: ids[2], Name: "Cherry", ChartOfAccount: "coa-1", Unit: "pcs", IsArchived: true, UpdatedAt: base,
	})
	require.NoError(t, err)

	all, total, err := r.ListItems(ctx, repo.ListItemsOptions{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"Apricot", "Cherry", "Banana", "Apple"}, names(all))

	page, total, err := r.ListItems(ctx, repo.ListItemsOptions{Limit: 3, Offset: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Equal(t, []string{"Apple"}, names(page))

	far := paginator.Query{Page: math.MaxInt64, PageSize: 10}
	beyond, total, err := r.ListItems(ctx, repo.ListItemsOptions{Limit: far.Limit(), Offset: far.Offset()})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Empty(t, beyond)

	active := false
	live, total, err := r.ListItems(ctx, repo.ListItemsOptions{IsArchived: &active, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.NotContains(t, names(live), "Cherry")

	found, total, err := r.ListItems(ctx, repo.ListItemsOptions{Search: "ap", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.ElementsMatch(t, []string{"Apple", "Apricot"}, names(found))
}

func names(items []item.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}
