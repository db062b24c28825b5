package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
)

const itemColumns = `id, code, name, chart_of_account, has_production_number, has_expiry_date,
	unit, converter, is_archived, created_at, created_by_id, updated_at, updated_by_id`

// CreateItem inserts a new Item row and returns the stored entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	converter, err := encodeConverter(opt.Converter)
	if err != nil {
		r.l.Errorf(ctx, "%s encodeConverter: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	const query = `
		INSERT INTO items (id, code, name, chart_of_account, has_production_number, has_expiry_date,
			unit, converter, is_archived, created_at, created_by_id, updated_at, updated_by_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, NULL, '')`

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx, query,
		id, opt.Code, opt.Name, opt.ChartOfAccount, opt.HasProductionNumber, opt.HasExpiryDate,
		opt.Unit, converter, opt.CreatedAt.UTC().UnixMilli(), opt.CreatedByID,
	)
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			return item.Item{}, &repo.DuplicateKeyError{Field: field}
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	created, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		return item.Item{}, err
	}
	return created, nil
}

// GetOneItem returns a zero Item when no row has the id.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE id = ? LIMIT 1", itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns one page of Items, newest first, and the filtered total.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int64, error) {
	where, args := r.buildListFilter(opt)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM items WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		"SELECT %s FROM items WHERE %s ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?",
		itemColumns, where,
	)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]item.Item, 0, opt.Limit)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateItem replaces the mutable fields of an Item. A zero Item is returned
// when the id no longer exists.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	converter, err := encodeConverter(opt.Converter)
	if err != nil {
		r.l.Errorf(ctx, "%s encodeConverter: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}

	const query = `
		UPDATE items
		SET code = ?, name = ?, chart_of_account = ?, has_production_number = ?, has_expiry_date = ?,
			unit = ?, converter = ?, is_archived = ?, updated_at = ?, updated_by_id = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Code, opt.Name, opt.ChartOfAccount, opt.HasProductionNumber, opt.HasExpiryDate,
		opt.Unit, converter, opt.IsArchived, opt.UpdatedAt.UTC().UnixMilli(), opt.UpdatedByID,
		opt.ID,
	)
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			return item.Item{}, &repo.DuplicateKeyError{Field: field}
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	if n == 0 {
		return item.Item{}, nil
	}
	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: opt.ID})
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("DeleteItem"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

// FindConflicts returns other items holding the given code or name.
func (r *implRepository) FindConflicts(ctx context.Context, opt repo.FindConflictsOptions) ([]item.Item, error) {
	where, args, ok := r.buildConflictFilter(opt)
	if !ok {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM items WHERE %s", itemColumns, where)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindConflicts"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("FindConflicts"), err)
			return nil, repo.ErrFailedToGet
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("FindConflicts"), err)
		return nil, repo.ErrFailedToGet
	}
	return items, nil
}
