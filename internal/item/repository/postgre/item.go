package postgre

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

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	converter, err := encodeConverter(opt.Converter)
	if err != nil {
		r.l.Errorf(ctx, "%s encodeConverter: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	query := fmt.Sprintf(`
		INSERT INTO items (id, code, name, chart_of_account, has_production_number, has_expiry_date,
			unit, converter, created_at, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Code, opt.Name, opt.ChartOfAccount, opt.HasProductionNumber, opt.HasExpiryDate,
		opt.Unit, converter, opt.CreatedAt.UTC(), opt.CreatedByID,
	))
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			return item.Item{}, &repo.DuplicateKeyError{Field: field}
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem retrieves a single Item by id.
// Returns zero-value Item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE id = $1 LIMIT 1", itemColumns)

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

// ListItems returns a paginated list of Items and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int64, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM items WHERE %s", countMods)
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM items %s", itemColumns, mods)
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

// UpdateItem updates an Item by ID and returns the updated entity.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	converter, err := encodeConverter(opt.Converter)
	if err != nil {
		r.l.Errorf(ctx, "%s encodeConverter: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}

	query := fmt.Sprintf(`
		UPDATE items
		SET code = $1, name = $2, chart_of_account = $3, has_production_number = $4, has_expiry_date = $5,
			unit = $6, converter = $7, is_archived = $8, updated_at = $9, updated_by_id = $10
		WHERE id = $11
		RETURNING %s`, itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.Code, opt.Name, opt.ChartOfAccount, opt.HasProductionNumber, opt.HasExpiryDate,
		opt.Unit, converter, opt.IsArchived, opt.UpdatedAt.UTC(), opt.UpdatedByID,
		opt.ID,
	))
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			return item.Item{}, &repo.DuplicateKeyError{Field: field}
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM items WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
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

// FindConflicts returns other Items holding the given code or name.
func (r *implRepository) FindConflicts(ctx context.Context, opt repo.FindConflictsOptions) ([]item.Item, error) {
	mods, args, ok := r.buildConflictQuery(opt)
	if !ok {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM items WHERE %s", itemColumns, mods)
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
