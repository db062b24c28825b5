package postgre

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
)

const uniqueViolationCode = "23505"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (item.Item, error) {
	var (
		it        item.Item
		converter []byte
		updatedAt sql.NullTime
	)
	err := s.Scan(
		&it.ID, &it.Code, &it.Name, &it.ChartOfAccount, &it.HasProductionNumber, &it.HasExpiryDate,
		&it.Unit, &converter, &it.IsArchived, &it.CreatedAt, &it.CreatedByID, &updatedAt, &it.UpdatedByID,
	)
	if err != nil {
		return item.Item{}, err
	}

	it.CreatedAt = it.CreatedAt.UTC()
	if updatedAt.Valid {
		t := updatedAt.Time.UTC()
		it.UpdatedAt = &t
	}
	if it.Converter, err = decodeConverter(converter); err != nil {
		return item.Item{}, err
	}
	return it, nil
}

// buildFilter builds the WHERE conditions shared by count and list, starting
// placeholders at $1.
func (r *implRepository) buildFilter(opt repo.ListItemsOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.IsArchived != nil {
		conditions = append(conditions, fmt.Sprintf("is_archived = $%d", idx))
		args = append(args, *opt.IsArchived)
		idx++
	}
	if opt.Search != "" {
		pattern := "%" + escapeLike(opt.Search) + "%"
		conditions = append(conditions, fmt.Sprintf("(code ILIKE $%d OR name ILIKE $%d)", idx, idx))
		args = append(args, pattern)
	}
	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting Items (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListItemsOptions) (string, []any) {
	conditions, args := r.buildFilter(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	conditions, args := r.buildFilter(opt)
	idx := len(args) + 1

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY created_at DESC, seq DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// buildConflictQuery reports ok=false when neither code nor name is set.
func (r *implRepository) buildConflictQuery(opt repo.FindConflictsOptions) (string, []any, bool) {
	var matches []string
	var args []any
	idx := 1

	if opt.Code != "" {
		matches = append(matches, fmt.Sprintf("code = $%d", idx))
		args = append(args, opt.Code)
		idx++
	}
	if opt.Name != "" {
		matches = append(matches, fmt.Sprintf("name = $%d", idx))
		args = append(args, opt.Name)
		idx++
	}
	if len(matches) == 0 {
		return "", nil, false
	}

	mods := "(" + strings.Join(matches, " OR ") + ")"
	if opt.ExcludeID != "" {
		mods += fmt.Sprintf(" AND id <> $%d", idx)
		args = append(args, opt.ExcludeID)
	}
	return mods, args, true
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type converterDoc struct {
	Name     string  `json:"name"`
	Multiply float64 `json:"multiply"`
}

// encodeConverter returns text so lib/pq sends it as a jsonb literal rather than bytea.
func encodeConverter(cs []item.Converter) (string, error) {
	docs := make([]converterDoc, 0, len(cs))
	for _, c := range cs {
		docs = append(docs, converterDoc{Name: c.Name, Multiply: c.Multiply})
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeConverter(raw []byte) ([]item.Converter, error) {
	cs := []item.Converter{}
	if len(raw) == 0 {
		return cs, nil
	}
	var docs []converterDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		cs = append(cs, item.Converter{Name: d.Name, Multiply: d.Multiply})
	}
	return cs, nil
}

// uniqueViolation maps a unique_violation to the item field its index guards.
func uniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolationCode {
		return "", false
	}
	switch pqErr.Constraint {
	case "items_code_unique":
		return item.FieldCode, true
	case "items_name_unique":
		return item.FieldName, true
	}
	return "", false
}
