package excel

import (
	"fmt"

	"replacement-metrics-service/internal/replacements/core/domain"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Replacements"

var Header = []string{
	"ID",
	"Date",
	"Rating",
	"Faulty Serial Number",
	"Issue",
	"Replacement S.N",
	"Customer",
	"Engineer",
	"Status",
	"State",
	"Stock Type",
	"Additional Comments",
	"Remark",
}

// Exporter renders records as an XLSX workbook.
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

// Export returns the workbook bytes: a bold header row and one row per record.
func (e *Exporter) Export(records []domain.ReplacementRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(Header))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			r.ID, r.Date, r.Rating, r.FaultySerialNumber, r.Issue, r.ReplacementSN,
			r.Customer, r.Engineer, r.Status, r.State, r.StockType,
			r.AdditionalComments, r.Remark,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
