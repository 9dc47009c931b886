package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"replacement-metrics-service/internal/replacements/core/domain"
	"replacement-metrics-service/internal/replacements/core/ports"
	"replacement-metrics-service/internal/platform/store"
)

type ReplacementRepository struct {
	db store.Querier
}

func NewReplacementRepository(db store.Querier) *ReplacementRepository {
	return &ReplacementRepository{db: db}
}

var _ ports.ReplacementReaderPort = (*ReplacementRepository)(nil)

const selectReplacements = `
SELECT
    id,
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
    remark
FROM replacements`

const newestFirst = `
ORDER BY date DESC NULLS LAST, id DESC`

func (r *ReplacementRepository) ListReplacements(ctx context.Context) ([]domain.RawRow, error) {
	return r.query(ctx, selectReplacements+newestFirst)
}

func (r *ReplacementRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*domain.RawRow, error) {
	rows, err := r.query(ctx, selectReplacements+`
WHERE replacement_serial_number = $1`+newestFirst+`
LIMIT 1`, serialNumber)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	return &rows[0], nil
}

func (r *ReplacementRepository) ListByFaultySerial(ctx context.Context, faultySerialNumber string) ([]domain.RawRow, error) {
	return r.query(ctx, selectReplacements+`
WHERE faulty_serial_number = $1`+newestFirst, faultySerialNumber)
}

func (r *ReplacementRepository) query(ctx context.Context, query string, args ...any) ([]domain.RawRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.RawRow{}
	for rows.Next() {
		var (
			id   int64
			date sql.NullTime
			text [12]sql.NullString
		)
		dest := []any{&id, &date}
		for i := range text {
			dest = append(dest, &text[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan replacement: %w", err)
		}

		row := domain.RawRow{
			ID:                      &id,
			Rating:                  nullable(text[0]),
			FaultySerialNumber:      nullable(text[1]),
			Type:                    nullable(text[2]),
			Issue:                   nullable(text[3]),
			ReplacementSerialNumber: nullable(text[4]),
			Customer:                nullable(text[5]),
			Engineer:                nullable(text[6]),
			Status:                  nullable(text[7]),
			State:                   nullable(text[8]),
			StockType:               nullable(text[9]),
			AdditionalComments:      nullable(text[10]),
			Remark:                  nullable(text[11]),
		}
		if date.Valid {
			t := date.Time
			row.Date = &t
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
