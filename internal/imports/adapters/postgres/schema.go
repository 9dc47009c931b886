package postgres

import (
	"context"
	"fmt"

	"replacement-metrics-service/internal/platform/store"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS replacements (
    id                        BIGSERIAL PRIMARY KEY,
    date                      TIMESTAMPTZ,
    rating                    TEXT,
    faulty_serial_number      TEXT,
    type                      TEXT,
    issue                     TEXT,
    replacement_serial_number TEXT,
    customer                  TEXT,
    engineer                  TEXT,
    status                    TEXT,
    state                     TEXT,
    stock_type                TEXT,
    additional_comments       TEXT,
    remark                    TEXT,
    import_batch              TEXT,
    dedupe_key                TEXT NOT NULL UNIQUE
);
CREATE INDEX IF NOT EXISTS replacements_faulty_serial_idx ON replacements (faulty_serial_number);
CREATE INDEX IF NOT EXISTS replacements_replacement_serial_idx ON replacements (replacement_serial_number);
CREATE INDEX IF NOT EXISTS replacements_date_idx ON replacements (date DESC NULLS LAST);
`

// EnsureSchema creates the replacements table and its indexes if missing.
func EnsureSchema(ctx context.Context, db store.Execer) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
