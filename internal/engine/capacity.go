package engine

import "math"

const monthsPerYear = 12

type CapacitySnapshot struct {
	AverageSpeedMetersPerHour float64 `json:"average_speed_meters_per_hour"`
	TotalHoursPerMonth        float64 `json:"total_hours_per_month"`
	ProductiveHoursPerMonth   float64 `json:"productive_hours_per_month"`
	MonthlyProductionMeters   float64 `json:"monthly_production_meters"`
	AnnualProductionMeters    float64 `json:"annual_production_meters"`
	UtilizationPercent        float64 `json:"utilization_percent"`
}

// ComputeCapacity converts throughput and schedule into hours and volume.
// Downtime beyond the scheduled hours clamps productive hours to zero.
func ComputeCapacity(p ProductionParameters) CapacitySnapshot {
	avgSpeed := p.SpeedPass1MetersPerHour*p.UsagePass1Percent/100 +
		p.SpeedPass2MetersPerHour*p.UsagePass2Percent()/100

	totalHours := p.ShiftsPerDay * p.HoursPerShift * p.OperatingDaysPerMonth

	productiveHours := math.Max(0, totalHours-p.DowntimeHoursPerMonth)
	if p.DowntimeMode == DowntimeNominal {
		productiveHours = totalHours
	}

	monthly := avgSpeed * productiveHours

	utilization := 0.0
	if totalHours > 0 {
		utilization = productiveHours / totalHours * 100
	}

	return CapacitySnapshot{
		AverageSpeedMetersPerHour: avgSpeed,
		TotalHoursPerMonth:        totalHours,
		ProductiveHoursPerMonth:   productiveHours,
		MonthlyProductionMeters:   monthly,
		AnnualProductionMeters:    monthly * monthsPerYear,
		UtilizationPercent:        utilization,
	}
}

// HasProduction reports whether any meters are produced in a month.
func (c CapacitySnapshot) HasProduction() bool {
	return c.MonthlyProductionMeters > 0
}
