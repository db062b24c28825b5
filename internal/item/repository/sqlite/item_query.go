package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (item.Item, error) {
	var (
		it         item.Item
		converter  string
		createdAt  int64
		updatedAt  sql.NullInt64
		isArchived bool
		hasProdNum bool
		hasExpiry  bool
	)
	err := s.Scan(
		&it.ID, &it.Code, &it.Name, &it.ChartOfAccount, &hasProdNum, &hasExpiry,
		&it.Unit, &converter, &isArchived, &createdAt, &it.CreatedByID, &updatedAt, &it.UpdatedByID,
	)
	if err != nil {
		return item.Item{}, err
	}

	it.HasProductionNumber = hasProdNum
	it.HasExpiryDate = hasExpiry
	it.IsArchived = isArchived
	it.CreatedAt = time.UnixMilli(createdAt).UTC()
	if updatedAt.Valid {
		t := time.UnixMilli(updatedAt.Int64).UTC()
		it.UpdatedAt = &t
	}
	if it.Converter, err = decodeConverter(converter); err != nil {
		return item.Item{}, err
	}
	return it, nil
}

// buildListFilter builds the WHERE clause shared by the count and page queries.
func (r *implRepository) buildListFilter(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.IsArchived != nil {
		conditions = append(conditions, "is_archived = ?")
		args = append(args, *opt.IsArchived)
	}
	if opt.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(opt.Search)) + "%"
		conditions = append(conditions, `(LOWER(code) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildConflictFilter reports ok=false when there is nothing to match.
func (r *implRepository) buildConflictFilter(opt repo.FindConflictsOptions) (string, []any, bool) {
	var matches []string
	var args []any

	if opt.Code != "" {
		matches = append(matches, "code = ?")
		args = append(args, opt.Code)
	}
	if opt.Name != "" {
		matches = append(matches, "name = ?")
		args = append(args, opt.Name)
	}
	if len(matches) == 0 {
		return "", nil, false
	}

	where := "(" + strings.Join(matches, " OR ") + ")"
	if opt.ExcludeID != "" {
		where += " AND id <> ?"
		args = append(args, opt.ExcludeID)
	}
	return where, args, true
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// converterRow is the JSON shape of one converter inside the converter column.
type converterRow struct {
	Name     string  `json:"name"`
	Multiply float64 `json:"multiply"`
}

func encodeConverter(cs []item.Converter) (string, error) {
	rows := make([]converterRow, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, converterRow{Name: c.Name, Multiply: c.Multiply})
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeConverter(raw string) ([]item.Converter, error) {
	cs := []item.Converter{}
	if raw == "" {
		return cs, nil
	}
	var rows []converterRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, err
	}
	for _, r := range rows {
		cs = append(cs, item.Converter{Name: r.Name, Multiply: r.Multiply})
	}
	return cs, nil
}

// uniqueViolation maps a unique constraint failure to the item field it guards.
func uniqueViolation(err error) (string, bool) {
	var sqliteErr *msqlite.Error
	isUnique := errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	msg := err.Error()
	if !isUnique && !strings.Contains(msg, "UNIQUE constraint failed") {
		return "", false
	}

	switch {
	case strings.Contains(msg, "items.code"):
		return item.FieldCode, true
	case strings.Contains(msg, "items.name"):
		return item.FieldName, true
	}
	return "", false
}
