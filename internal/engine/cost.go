package engine

// CostSnapshot holds per-meter variable costs and the monthly fixed cost.
// FixedCostPerMeter is nil when nothing is produced.
type CostSnapshot struct {
	InkCostPerMeter             float64  `json:"ink_cost_per_meter"`
	PrintingPaperCostPerMeter   float64  `json:"printing_paper_cost_per_meter"`
	ProtectivePaperCostPerMeter float64  `json:"protective_paper_cost_per_meter"`
	ElectricityCostPerMeter     float64  `json:"electricity_cost_per_meter"`
	TotalVariableCostPerMeter   float64  `json:"total_variable_cost_per_meter"`
	SalaryUsd                   float64  `json:"salary_usd"`
	PrinterDepreciationUsd      float64  `json:"printer_depreciation_usd"`
	CalenderDepreciationUsd     float64  `json:"calender_depreciation_usd"`
	RentUsd                     float64  `json:"rent_usd"`
	OtherFixedUsd               float64  `json:"other_fixed_usd"`
	MaintenanceUsd              float64  `json:"maintenance_usd"`
	MonthlyFixedCostUsd         float64  `json:"monthly_fixed_cost_usd"`
	FixedCostPerMeter           *float64 `json:"fixed_cost_per_meter"`
}

// ComputeCost aggregates consumables into per-meter cost and fixed costs into a
// monthly figure.
//
// Paper cost per meter scales with waste only; print width affects monthly
// consumption (see ComputeConsumption), not the per-meter price.
func ComputeCost(c ConsumablesParameters, f FixedCostParameters, capacity CapacitySnapshot) CostSnapshot {
	ink := c.InkMlPerMeter / 1000 * c.InkPriceUsdPerLiter
	printingPaper := c.PrintingPaperUnitsPerMeter() * c.PrintingPaperPriceUsdPerUnit
	protectivePaper := c.ProtectivePaperUnitsPerMeter() * c.ProtectivePaperPriceUsdPerUnit
	electricity := electricityCostPerMeter(c.MachinePowerKw, c.ElectricityPriceUsdPerKwh, capacity)

	s := CostSnapshot{
		InkCostPerMeter:             ink,
		PrintingPaperCostPerMeter:   printingPaper,
		ProtectivePaperCostPerMeter: protectivePaper,
		ElectricityCostPerMeter:     electricity,
		TotalVariableCostPerMeter:   ink + printingPaper + protectivePaper + electricity,
		SalaryUsd:                   f.MonthlySalaryUsd,
		PrinterDepreciationUsd:      MonthlyDepreciation(f.PrinterInvestmentUsd, f.PrinterDepreciationYears),
		CalenderDepreciationUsd:     MonthlyDepreciation(f.CalenderInvestmentUsd, f.CalenderDepreciationYears),
		RentUsd:                     f.MonthlyRentUsd,
		OtherFixedUsd:               f.OtherMonthlyFixedUsd,
		MaintenanceUsd:              f.MonthlyMaintenanceUsd,
	}
	s.MonthlyFixedCostUsd = s.SalaryUsd + s.PrinterDepreciationUsd + s.CalenderDepreciationUsd +
		s.RentUsd + s.OtherFixedUsd + s.MaintenanceUsd
	s.FixedCostPerMeter = PerMeter(s.MonthlyFixedCostUsd, capacity)

	return s
}

// MonthlyDepreciation is straight-line depreciation spread over months.
func MonthlyDepreciation(investment, years float64) float64 {
	if years <= 0 {
		return 0
	}
	return investment / years / monthsPerYear
}

// PerMeter divides a monthly amount by monthly production, or returns nil when
// nothing is produced.
func PerMeter(monthlyUsd float64, capacity CapacitySnapshot) *float64 {
	if !capacity.HasProduction() {
		return nil
	}
	v := monthlyUsd / capacity.MonthlyProductionMeters
	return &v
}

// electricityCostPerMeter falls back to 0 on zero production because the
// result feeds the variable cost total.
func electricityCostPerMeter(kw, pricePerKwh float64, capacity CapacitySnapshot) float64 {
	if !capacity.HasProduction() {
		return 0
	}
	return kw * capacity.ProductiveHoursPerMonth * pricePerKwh / capacity.MonthlyProductionMeters
}

func copyOptional(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
