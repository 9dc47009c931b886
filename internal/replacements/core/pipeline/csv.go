package pipeline

import (
	"strings"

	"replacement-metrics-service/internal/replacements/core/domain"
)

// DefaultHeaderLines is the size of the title block the export puts above
// the data rows.
const DefaultHeaderLines = 3

// CSVOptions controls ParseCSVWith.
type CSVOptions struct {
	HeaderLines int
}

// CSVResult is the outcome of parsing one export.
type CSVResult struct {
	Records []domain.ReplacementRecord
	// Dropped counts non-blank lines rejected for a missing date or rating.
	Dropped int
}

// SplitLine splits one line on commas. A double quote toggles the quoted
// state and is never part of the value; commas inside quotes are kept.
// Embedded quotes cannot be escaped. The result always has
// separators+1 fields, each trimmed.
func SplitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}

// ParseCSV parses an export with the default title block.
func ParseCSV(text string) []domain.ReplacementRecord {
	return ParseCSVWith(text, CSVOptions{HeaderLines: DefaultHeaderLines}).Records
}

// ParseCSVWith skips opts.HeaderLines lines unconditionally, ignores blank
// lines and maps every remaining line positionally. Record ids are the
// 1-based position of the line after the title block.
func ParseCSVWith(text string, opts CSVOptions) CSVResult {
	res := CSVResult{Records: []domain.ReplacementRecord{}}
	eachLine(text, opts, func(cols []string, id int64) {
		rec, ok := FromColumns(cols, id)
		if !ok {
			res.Dropped++
			return
		}
		res.Records = append(res.Records, rec)
	})
	return res
}

// ImportRow is a parsed line plus the columns the record does not carry.
type ImportRow struct {
	Record domain.ReplacementRecord
	Type   string
}

// ParseImportRows reads an export like ParseCSVWith and keeps the type
// column for storage.
func ParseImportRows(text string, opts CSVOptions) ([]ImportRow, int) {
	var (
		rows    []ImportRow
		dropped int
	)
	eachLine(text, opts, func(cols []string, id int64) {
		rec, ok := FromColumns(cols, id)
		if !ok {
			dropped++
			return
		}
		row := ImportRow{Record: rec}
		if colType < len(cols) {
			row.Type = cols[colType]
		}
		rows = append(rows, row)
	})
	return rows, dropped
}

func eachLine(text string, opts CSVOptions, fn func(cols []string, id int64)) {
	lines := strings.Split(text, "\n")
	skip := max(opts.HeaderLines, 0)
	if skip >= len(lines) {
		return
	}
	for i, line := range lines[skip:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(SplitLine(line), int64(i+1))
	}
}

// Column positions of the export layout.
const (
	colDate = iota
	colRating
	colFaultySerial
	colType
	colIssue
	colReplacementSerial
	colStatus
	colState
	colCustomer
	colEngineer
	colStockType
	colAdditionalComments
	colRemark
	columnCount
)

// FromColumns maps a positional row into a record. Missing trailing columns
// read as "". The row is rejected when date or rating is empty.
func FromColumns(cols []string, id int64) (domain.ReplacementRecord, bool) {
	col := func(i int) string {
		if i < len(cols) {
			return cols[i]
		}
		return ""
	}

	date, rating := col(colDate), col(colRating)
	if date == "" || rating == "" {
		return domain.ReplacementRecord{}, false
	}

	status := col(colStatus)
	if status == "" {
		status = domain.DefaultStatus
	}

	return domain.ReplacementRecord{
		ID:                 id,
		Date:               date,
		Rating:             rating,
		FaultySerialNumber: col(colFaultySerial),
		Issue:              col(colIssue),
		ReplacementSN:      col(colReplacementSerial),
		Customer:           col(colCustomer),
		Engineer:           col(colEngineer),
		Status:             status,
		State:              col(colState),
		StockType:          col(colStockType),
		AdditionalComments: col(colAdditionalComments),
		Remark:             col(colRemark),
	}, true
}
