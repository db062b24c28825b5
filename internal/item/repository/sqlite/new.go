package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"inventory-management/internal/item/repository"
	"inventory-management/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id                    TEXT PRIMARY KEY,
	code                  TEXT NOT NULL DEFAULT '',
	name                  TEXT NOT NULL,
	chart_of_account      TEXT NOT NULL,
	has_production_number INTEGER NOT NULL DEFAULT 0,
	has_expiry_date       INTEGER NOT NULL DEFAULT 0,
	unit                  TEXT NOT NULL,
	converter             TEXT NOT NULL DEFAULT '[]',
	is_archived           INTEGER NOT NULL DEFAULT 0,
	created_at            INTEGER NOT NULL,
	created_by_id         TEXT NOT NULL,
	updated_at            INTEGER,
	updated_by_id         TEXT NOT NULL DEFAULT ''
);

CREATE UNIQUE INDEX IF NOT EXISTS items_code_unique ON items(code) WHERE code <> '';
CREATE UNIQUE INDEX IF NOT EXISTS items_name_unique ON items(name);
CREATE INDEX IF NOT EXISTS items_created_at_idx ON items(created_at DESC);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the item domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// EnsureSchema creates the items table and its indexes if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating items schema: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/sqlite.%s", method)
}
