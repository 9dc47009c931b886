package pipeline

import (
	"time"

	"replacement-metrics-service/internal/replacements/core/domain"
)

// DisplayDateLayout renders dates as dd/mm/yyyy.
const DisplayDateLayout = "02/01/2006"

// Normalizer turns storage rows into canonical records.
// A nil Location renders timestamps in UTC.
type Normalizer struct {
	Location *time.Location
}

// Normalize runs the zero Normalizer over rows.
func Normalize(rows []domain.RawRow) []domain.ReplacementRecord {
	return Normalizer{}.Normalize(rows)
}

func (n Normalizer) Normalize(rows []domain.RawRow) []domain.ReplacementRecord {
	out := make([]domain.ReplacementRecord, 0, len(rows))
	for i, r := range rows {
		out = append(out, n.Record(r, i))
	}
	return out
}

// Record normalizes a single row found at position index of its batch.
func (n Normalizer) Record(r domain.RawRow, index int) domain.ReplacementRecord {
	id := int64(index + 1)
	if r.ID != nil {
		id = *r.ID
	}

	var date string
	switch {
	case r.Date != nil && !r.Date.IsZero():
		date = FormatDisplayDate(*r.Date, n.Location)
	case r.DateText != nil:
		date = *r.DateText
	}

	status := str(r.Status)
	if status == "" {
		status = domain.DefaultStatus
	}

	return domain.ReplacementRecord{
		ID:                 id,
		Date:               date,
		Rating:             str(r.Rating),
		FaultySerialNumber: str(r.FaultySerialNumber),
		Issue:              str(r.Issue),
		ReplacementSN:      str(r.ReplacementSerialNumber),
		Customer:           str(r.Customer),
		Engineer:           str(r.Engineer),
		Status:             status,
		State:              str(r.State),
		StockType:          str(r.StockType),
		AdditionalComments: str(r.AdditionalComments),
		Remark:             str(r.Remark),
	}
}

// FormatDisplayDate renders t as dd/mm/yyyy in loc (UTC when nil).
func FormatDisplayDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayDateLayout)
}

// ToRaw is the inverse of Record for an already canonical record; the date
// travels as text so Normalize(ToRaw(r)) == r.
func ToRaw(rec domain.ReplacementRecord) domain.RawRow {
	id := rec.ID
	return domain.RawRow{
		ID:                      &id,
		DateText:                ptr(rec.Date),
		Rating:                  ptr(rec.Rating),
		FaultySerialNumber:      ptr(rec.FaultySerialNumber),
		Issue:                   ptr(rec.Issue),
		ReplacementSerialNumber: ptr(rec.ReplacementSN),
		Customer:                ptr(rec.Customer),
		Engineer:                ptr(rec.Engineer),
		Status:                  ptr(rec.Status),
		State:                   ptr(rec.State),
		StockType:               ptr(rec.StockType),
		AdditionalComments:      ptr(rec.AdditionalComments),
		Remark:                  ptr(rec.Remark),
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ptr(s string) *string { return &s }
