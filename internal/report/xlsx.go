package report

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes a workbook with one sheet per table, named by the table
// identifier. Numbers stay numeric; nil cells hold NotApplicable.
func WriteXLSX(w io.Writer, tables []Table) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", t.Name, err)
		}

		if err := writeSheet(f, t, header); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, t Table, headerStyle int) error {
	for col, name := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(t.Name, cell, name); err != nil {
			return fmt.Errorf("failed to set header %s!%s: %w", t.Name, cell, err)
		}
	}
	if len(t.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err := f.SetCellStyle(t.Name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(t.Columns))
		_ = f.SetColWidth(t.Name, "A", lastCol, 22)
	}

	for row, values := range t.Rows {
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(t.Name, cell, xlsxValue(value)); err != nil {
				return fmt.Errorf("failed to set %s!%s: %w", t.Name, cell, err)
			}
		}
	}
	return nil
}

func xlsxValue(v any) any {
	switch x := v.(type) {
	case nil:
		return NotApplicable
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return NotApplicable
		}
		return x
	default:
		return v
	}
}
