package engine

// ConsumptionSnapshot reports physical consumption for a month and a year.
// Paper units scale with print width here, unlike the per-meter cost.
type ConsumptionSnapshot struct {
	InkLitersPerMonth            float64 `json:"ink_liters_per_month"`
	InkLitersPerYear             float64 `json:"ink_liters_per_year"`
	PrintingPaperUnitsPerMonth   float64 `json:"printing_paper_units_per_month"`
	PrintingPaperUnitsPerYear    float64 `json:"printing_paper_units_per_year"`
	ProtectivePaperUnitsPerMonth float64 `json:"protective_paper_units_per_month"`
	ProtectivePaperUnitsPerYear  float64 `json:"protective_paper_units_per_year"`
	EnergyKwhPerMonth            float64 `json:"energy_kwh_per_month"`
	EnergyKwhPerYear             float64 `json:"energy_kwh_per_year"`
	DowntimeHoursPerMonth        float64 `json:"downtime_hours_per_month"`
	DowntimeLostMeters           float64 `json:"downtime_lost_meters"`
}

func ComputeConsumption(p ProductionParameters, c ConsumablesParameters, capacity CapacitySnapshot) ConsumptionSnapshot {
	monthly := capacity.MonthlyProductionMeters

	ink := c.InkMlPerMeter * monthly / 1000
	printing := c.PrintingPaperUnitsPerMeter() * monthly * p.PrintWidthMeters
	protective := c.ProtectivePaperUnitsPerMeter() * monthly * p.PrintWidthMeters
	kwh := c.MachinePowerKw * capacity.ProductiveHoursPerMonth

	return ConsumptionSnapshot{
		InkLitersPerMonth:            ink,
		InkLitersPerYear:             ink * monthsPerYear,
		PrintingPaperUnitsPerMonth:   printing,
		PrintingPaperUnitsPerYear:    printing * monthsPerYear,
		ProtectivePaperUnitsPerMonth: protective,
		ProtectivePaperUnitsPerYear:  protective * monthsPerYear,
		EnergyKwhPerMonth:            kwh,
		EnergyKwhPerYear:             kwh * monthsPerYear,
		DowntimeHoursPerMonth:        p.DowntimeHoursPerMonth,
		DowntimeLostMeters:           p.DowntimeHoursPerMonth * capacity.AverageSpeedMetersPerHour,
	}
}
