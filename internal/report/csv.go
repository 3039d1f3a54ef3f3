package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
)

// NotApplicable is written for nil cells.
const NotApplicable = "n/a"

// WriteCSV writes one table with a header row. Numbers are fixed to the
// table's precision.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, cell := range row {
			record[i] = FormatCell(cell, t.Precision)
		}
		if err := cw.Write(record[:len(row)]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatCell renders a cell the way the CSV export does.
func FormatCell(cell any, precision int32) string {
	switch v := cell.(type) {
	case nil:
		return NotApplicable
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NotApplicable
		}
		return decimal.NewFromFloat(v).StringFixed(precision)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// FileName is the suggested file name for a single-table export.
func FileName(t Table, ext string) string {
	return fmt.Sprintf("sublimation_%s.%s", t.Name, ext)
}
