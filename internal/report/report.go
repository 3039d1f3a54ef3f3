package report

import "sublimation-calc/internal/engine"

const (
	TableCapacity      = "capacity"
	TableConsumption   = "consumption"
	TableVariableCosts = "variable_costs"
	TableFixedCosts    = "fixed_costs"
	TableSummary       = "summary"
	TableBreakEven     = "break_even"
	TableSensitivity   = "sensitivity"
	TableScenario      = "scenario"
)

// Table is one flat record set. Rows hold float64, string or nil cells; nil
// marks a figure that does not apply, such as break-even with no margin.
type Table struct {
	Name      string
	Title     string
	Columns   []string
	Rows      [][]any
	Precision int32
}

// Labeler localizes identifiers. A nil Labeler keeps them as is.
type Labeler interface {
	Label(key string) string
}

type Options struct {
	SensitivityPercent float64
	// Scenario adds a comparison table when set.
	Scenario *engine.ScenarioInputs
	Labeler  Labeler
}

func DefaultOptions() Options {
	return Options{SensitivityPercent: engine.DefaultSensitivityPercent}
}

// Build assembles every table for e in display order.
func Build(e engine.Evaluation, opts Options) []Table {
	b := builder{labeler: opts.Labeler}

	tables := []Table{
		b.capacity(e.Capacity),
		b.consumption(e.Consumption),
		b.variableCosts(e.Cost),
		b.fixedCosts(e.Cost, e.Capacity),
		b.summary(e.Financial),
		b.breakEven(e.BreakEven),
		b.sensitivity(engine.ComputeSensitivityTable(opts.SensitivityPercent, e)),
	}
	if opts.Scenario != nil {
		tables = append(tables, b.scenario(engine.CompareScenario(e, *opts.Scenario)))
	}
	return tables
}

// TableNames lists the identifiers Build produces, in order.
func TableNames(withScenario bool) []string {
	names := []string{
		TableCapacity,
		TableConsumption,
		TableVariableCosts,
		TableFixedCosts,
		TableSummary,
		TableBreakEven,
		TableSensitivity,
	}
	if withScenario {
		names = append(names, TableScenario)
	}
	return names
}

// Find returns the table with the given identifier.
func Find(tables []Table, name string) (Table, bool) {
	for _, t := range tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

type builder struct {
	labeler Labeler
}

func (b builder) label(key string) string {
	if b.labeler == nil {
		return key
	}
	return b.labeler.Label(key)
}

func (b builder) table(name string, precision int32, columns ...string) Table {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = b.label(c)
	}
	return Table{Name: name, Title: b.label(name), Columns: cols, Precision: precision}
}

func (b builder) capacity(c engine.CapacitySnapshot) Table {
	t := b.table(TableCapacity, 2, "metric", "value")
	t.Rows = [][]any{
		{b.label("average_speed"), c.AverageSpeedMetersPerHour},
		{b.label("total_hours"), c.TotalHoursPerMonth},
		{b.label("productive_hours"), c.ProductiveHoursPerMonth},
		{b.label("monthly_production"), c.MonthlyProductionMeters},
		{b.label("annual_production"), c.AnnualProductionMeters},
		{b.label("utilization_percent"), c.UtilizationPercent},
	}
	return t
}

func (b builder) consumption(c engine.ConsumptionSnapshot) Table {
	t := b.table(TableConsumption, 2, "item", "monthly", "annual", "unit")
	t.Rows = [][]any{
		{b.label("ink_liters"), c.InkLitersPerMonth, c.InkLitersPerYear, "L"},
		{b.label("printing_paper_units"), c.PrintingPaperUnitsPerMonth, c.PrintingPaperUnitsPerYear, "un"},
		{b.label("protective_paper_units"), c.ProtectivePaperUnitsPerMonth, c.ProtectivePaperUnitsPerYear, "un"},
		{b.label("energy_kwh"), c.EnergyKwhPerMonth, c.EnergyKwhPerYear, "kWh"},
		{b.label("downtime_hours"), c.DowntimeHoursPerMonth, c.DowntimeHoursPerMonth * 12, "h"},
		{b.label("downtime_lost_meters"), c.DowntimeLostMeters, c.DowntimeLostMeters * 12, "m"},
	}
	return t
}

func (b builder) variableCosts(c engine.CostSnapshot) Table {
	t := b.table(TableVariableCosts, 4, "item", "usd_per_meter")
	t.Rows = [][]any{
		{b.label("ink"), c.InkCostPerMeter},
		{b.label("printing_paper"), c.PrintingPaperCostPerMeter},
		{b.label("protective_paper"), c.ProtectivePaperCostPerMeter},
		{b.label("electricity"), c.ElectricityCostPerMeter},
		{b.label("total_variable"), c.TotalVariableCostPerMeter},
	}
	return t
}

func (b builder) fixedCosts(c engine.CostSnapshot, capacity engine.CapacitySnapshot) Table {
	t := b.table(TableFixedCosts, 4, "item", "usd_per_month", "usd_per_meter")
	lines := []struct {
		key string
		usd float64
	}{
		{"salary", c.SalaryUsd},
		{"printer_depreciation", c.PrinterDepreciationUsd},
		{"calender_depreciation", c.CalenderDepreciationUsd},
		{"rent", c.RentUsd},
		{"other", c.OtherFixedUsd},
		{"maintenance", c.MaintenanceUsd},
		{"total_fixed", c.MonthlyFixedCostUsd},
	}
	for _, l := range lines {
		t.Rows = append(t.Rows, []any{b.label(l.key), l.usd, optional(engine.PerMeter(l.usd, capacity))})
	}
	return t
}

func (b builder) summary(f engine.FinancialSummary) Table {
	t := b.table(TableSummary, 2, "metric", "value")
	t.Rows = [][]any{
		{b.label("revenue"), f.MonthlyRevenueUsd},
		{b.label("variable_cost"), f.MonthlyVariableCostUsd},
		{b.label("fixed_cost"), f.MonthlyFixedCostUsd},
		{b.label("profit"), f.MonthlyProfitUsd},
		{b.label("roi_percent"), f.AnnualRoiPercent},
	}
	return t
}

func (b builder) breakEven(r engine.BreakEvenResult) Table {
	t := b.table(TableBreakEven, 4, "metric", "value")
	t.Rows = [][]any{
		{b.label("margin"), r.MarginUsdPerMeter},
		{b.label("break_even_meters"), optional(r.BreakEvenMeters)},
		{b.label("minimum_viable_price"), optional(r.MinimumViablePriceUsdPerMeter)},
		{b.label("status"), b.status(r.Status)},
	}
	return t
}

func (b builder) status(s engine.BreakEvenStatus) string {
	if b.labeler == nil {
		return string(s)
	}
	return b.labeler.Label("status." + string(s))
}

func (b builder) sensitivity(rows []engine.SensitivityRow) Table {
	t := b.table(TableSensitivity, 4, "parameter", "base_value", "adjusted_value",
		"base_roi_percent", "adjusted_roi_percent", "base_break_even_meters", "adjusted_break_even_meters")
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			b.label(string(r.Parameter)),
			r.BaseValue,
			r.AdjustedValue,
			r.BaseRoi,
			r.AdjustedRoi,
			optional(r.BaseBreakEven),
			optional(r.AdjustedBreakEven),
		})
	}
	return t
}

func (b builder) scenario(c engine.ScenarioComparison) Table {
	t := b.table(TableScenario, 4, "metric", "base", "scenario", "delta")
	base, alt, d := c.Base, c.Scenario, c.Delta
	t.Rows = [][]any{
		{b.label("monthly_production"), base.Capacity.MonthlyProductionMeters, alt.Capacity.MonthlyProductionMeters, d.MonthlyProductionMeters},
		{b.label("variable_cost_per_meter"), base.Cost.TotalVariableCostPerMeter, alt.Cost.TotalVariableCostPerMeter, d.TotalVariableCostPerMeter},
		{b.label("fixed_cost_per_meter"), optional(base.Cost.FixedCostPerMeter), optional(alt.Cost.FixedCostPerMeter),
			difference(base.Cost.FixedCostPerMeter, alt.Cost.FixedCostPerMeter)},
		{b.label("revenue"), base.Financial.MonthlyRevenueUsd, alt.Financial.MonthlyRevenueUsd, d.MonthlyRevenueUsd},
		{b.label("variable_cost"), base.Financial.MonthlyVariableCostUsd, alt.Financial.MonthlyVariableCostUsd, d.MonthlyVariableCostUsd},
		{b.label("profit"), base.Financial.MonthlyProfitUsd, alt.Financial.MonthlyProfitUsd, d.MonthlyProfitUsd},
		{b.label("roi_percent"), base.Financial.AnnualRoiPercent, alt.Financial.AnnualRoiPercent, d.AnnualRoiPercent},
		{b.label("break_even_meters"), optional(base.BreakEven.BreakEvenMeters), optional(alt.BreakEven.BreakEvenMeters), optional(d.BreakEvenMeters)},
	}
	return t
}

// optional turns an absent figure into a nil cell.
func optional(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func difference(base, alt *float64) any {
	if base == nil || alt == nil {
		return nil
	}
	return *alt - *base
}
