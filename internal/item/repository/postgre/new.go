package postgre

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
	seq                   BIGSERIAL NOT NULL,
	code                  TEXT NOT NULL DEFAULT '',
	name                  TEXT NOT NULL,
	chart_of_account      TEXT NOT NULL,
	has_production_number BOOLEAN NOT NULL DEFAULT FALSE,
	has_expiry_date       BOOLEAN NOT NULL DEFAULT FALSE,
	unit                  TEXT NOT NULL,
	converter             JSONB NOT NULL DEFAULT '[]'::jsonb,
	is_archived           BOOLEAN NOT NULL DEFAULT FALSE,
	created_at            TIMESTAMPTZ NOT NULL,
	created_by_id         TEXT NOT NULL,
	updated_at            TIMESTAMPTZ,
	updated_by_id         TEXT NOT NULL DEFAULT ''
);

CREATE UNIQUE INDEX IF NOT EXISTS items_code_unique ON items (code) WHERE code <> '';
CREATE UNIQUE INDEX IF NOT EXISTS items_name_unique ON items (name);
CREATE INDEX IF NOT EXISTS items_created_at_idx ON items (created_at DESC, seq DESC);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the item domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/postgre: db is required")
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

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/postgre.%s", method)
}
