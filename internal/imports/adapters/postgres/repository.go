package postgres

import (
	"context"

	"replacement-metrics-service/internal/imports/core/domain"
	"replacement-metrics-service/internal/imports/core/ports"
	"replacement-metrics-service/internal/platform/store"
)

type ReplacementWriter struct {
	db store.Execer
}

func NewReplacementWriter(db store.Execer) *ReplacementWriter {
	return &ReplacementWriter{db: db}
}

var _ ports.ReplacementWriterPort = (*ReplacementWriter)(nil)

const insertReplacementSQL = `
INSERT INTO replacements (
    date,
    rating,
    faulty_serial_number,
    type,
    issue,
    replacement_serial_number,
    customer,
    engineer,
    status,
    state,
    stock_type,
    additional_comments,
    remark,
    import_batch,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9, $10,
    $11, $12, $13, $14, $15
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (w *ReplacementWriter) InsertReplacement(ctx context.Context, r *domain.ImportedReplacement) (bool, error) {
	res, err := w.db.ExecContext(ctx, insertReplacementSQL,
		r.Date,
		nullIfEmpty(r.Rating),
		nullIfEmpty(r.FaultySerialNumber),
		nullIfEmpty(r.Type),
		nullIfEmpty(r.Issue),
		nullIfEmpty(r.ReplacementSerialNumber),
		nullIfEmpty(r.Customer),
		nullIfEmpty(r.Engineer),
		nullIfEmpty(r.Status),
		nullIfEmpty(r.State),
		nullIfEmpty(r.StockType),
		nullIfEmpty(r.AdditionalComments),
		nullIfEmpty(r.Remark),
		r.BatchID,
		r.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// 0 rows means ON CONFLICT skipped a duplicate
	return rows > 0, nil
}

// Blank export cells are stored as NULL so the reader sees them as absent.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
