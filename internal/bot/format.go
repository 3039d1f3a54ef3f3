package bot

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"text/tabwriter"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/i18n"
	"sublimation-calc/internal/report"
)

// parseNumber accepts both "4.5" and "4,5".
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderTable lays a report table out as an aligned preformatted block.
func renderTable(t report.Table) string {
	var sb strings.Builder

	sb.WriteString("<b>" + html.EscapeString(t.Title) + "</b>\n<pre>")

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, html.EscapeString(strings.Join(t.Columns, "\t")))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = report.FormatCell(cell, t.Precision)
		}
		fmt.Fprintln(tw, html.EscapeString(strings.Join(cells, "\t")))
	}
	_ = tw.Flush()

	sb.WriteString("</pre>")
	return sb.String()
}

func renderTables(tables []report.Table, names ...string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if t, ok := report.Find(tables, name); ok {
			parts = append(parts, renderTable(t))
		}
	}
	return strings.Join(parts, "\n\n")
}

// downtimeWarning is empty when the schedule has no downtime.
func downtimeWarning(t i18n.Translator, e engine.Evaluation) string {
	if e.Consumption.DowntimeHoursPerMonth <= 0 {
		return ""
	}
	return t.Format("warn.downtime", e.Consumption.DowntimeHoursPerMonth, e.Consumption.DowntimeLostMeters)
}

func breakEvenMessage(t i18n.Translator, e engine.Evaluation) string {
	production := e.Capacity.MonthlyProductionMeters

	switch e.BreakEven.Status {
	case engine.StatusAbove:
		return t.Format("be.above", production)
	case engine.StatusAt:
		return t.Format("be.at", production)
	case engine.StatusBelow:
		return t.Format("be.below", production)
	default:
		return t.Label("be.not_computable")
	}
}

// inputErrors extracts field errors from err, if it carries any.
func inputErrors(err error) (engine.ValidationErrors, bool) {
	var list engine.ValidationErrors
	if errors.As(err, &list) {
		return list, true
	}
	var single engine.FieldError
	if errors.As(err, &single) {
		return engine.ValidationErrors{single}, true
	}
	return nil, false
}

// validationMessage lists field errors with localized field names.
func validationMessage(t i18n.Translator, errs engine.ValidationErrors) string {
	lines := make([]string, 0, len(errs))
	for _, fe := range errs {
		lines = append(lines, t.Label("field."+fe.Key)+": "+fe.Message)
	}
	return strings.Join(lines, "\n")
}

func renderFields(t i18n.Translator, in engine.Inputs, keys []engine.Field) string {
	var sb strings.Builder

	sb.WriteString(html.EscapeString(t.Label("msg.fields")) + "\n<pre>")

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, f := range keys {
		fmt.Fprintf(tw, "%s\t%s\t%s..%s\t%s\n",
			f.Key,
			formatNumber(f.Value(in)),
			formatNumber(f.Min),
			formatNumber(f.Max),
			html.EscapeString(t.Label("field."+f.Key)))
	}
	_ = tw.Flush()

	sb.WriteString("</pre>")
	return sb.String()
}
