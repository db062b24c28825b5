package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is an in-memory item store with the same unique rules as the real ones.
type mockRepo struct {
	items  map[string]item.Item
	order  []string
	seq    int
	writes int

	failGet      bool
	failConflict bool
	// raceField makes the next write fail as if a concurrent write took the value.
	raceField string
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[string]item.Item)}
}

var errMockDB = errors.New("db error")

func (m *mockRepo) duplicate(id, code, name string) error {
	for _, other := range m.items {
		if other.ID == id {
			continue
		}
		if code != "" && other.Code == code {
			return &repo.DuplicateKeyError{Field: "code"}
		}
		if other.Name == name {
			return &repo.DuplicateKeyError{Field: "name"}
		}
	}
	return nil
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	if m.raceField != "" {
		field := m.raceField
		m.raceField = ""
		return item.Item{}, fmt.Errorf("%w: %w", repo.ErrFailedToInsert, &repo.DuplicateKeyError{Field: field})
	}
	if err := m.duplicate("", opt.Code, opt.Name); err != nil {
		return item.Item{}, err
	}
	m.seq++
	m.writes++
	it := item.Item{
		ID:                  fmt.Sprintf("item-%d", m.seq),
		Code:                opt.Code,
		Name:                opt.Name,
		ChartOfAccount:      opt.ChartOfAccount,
		HasProductionNumber: opt.HasProductionNumber,
		HasExpiryDate:       opt.HasExpiryDate,
		Unit:                opt.Unit,
		Converter:           opt.Converter,
		CreatedAt:           opt.CreatedAt,
		CreatedByID:         opt.CreatedByID,
	}
	m.items[it.ID] = it
	m.order = append(m.order, it.ID)
	return it, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	if m.failGet {
		return item.Item{}, errMockDB
	}
	return m.items[opt.ID], nil
}

func (m *mockRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int64, error) {
	var matched []item.Item
	for i := len(m.order) - 1; i >= 0; i-- {
		it, ok := m.items[m.order[i]]
		if !ok {
			continue
		}
		if opt.IsArchived != nil && it.IsArchived != *opt.IsArchived {
			continue
		}
		if opt.Search != "" &&
			!strings.Contains(strings.ToLower(it.Name), strings.ToLower(opt.Search)) &&
			!strings.Contains(strings.ToLower(it.Code), strings.ToLower(opt.Search)) {
			continue
		}
		matched = append(matched, it)
	}
	total := int64(len(matched))
	if opt.Offset >= len(matched) {
		return nil, total, nil
	}
	end := opt.Offset + opt.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[opt.Offset:end], total, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	if m.raceField != "" {
		field := m.raceField
		m.raceField = ""
		return item.Item{}, &repo.DuplicateKeyError{Field: field}
	}
	it, ok := m.items[opt.ID]
	if !ok {
		return item.Item{}, nil
	}
	if err := m.duplicate(opt.ID, opt.Code, opt.Name); err != nil {
		return item.Item{}, err
	}
	m.writes++
	updatedAt := opt.UpdatedAt
	it.Code = opt.Code
	it.Name = opt.Name
	it.ChartOfAccount = opt.ChartOfAccount
	it.HasProductionNumber = opt.HasProductionNumber
	it.HasExpiryDate = opt.HasExpiryDate
	it.Unit = opt.Unit
	it.Converter = opt.Converter
	it.IsArchived = opt.IsArchived
	it.UpdatedAt = &updatedAt
	it.UpdatedByID = opt.UpdatedByID
	m.items[it.ID] = it
	return it, nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, id string) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	m.writes++
	delete(m.items, id)
	return true, nil
}

func (m *mockRepo) FindConflicts(ctx context.Context, opt repo.FindConflictsOptions) ([]item.Item, error) {
	if m.failConflict {
		return nil, errMockDB
	}
	var out []item.Item
	for _, it := range m.items {
		if it.ID == opt.ExcludeID {
			continue
		}
		if (opt.Code != "" && it.Code == opt.Code) || (opt.Name != "" && it.Name == opt.Name) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
