package engine

import "fmt"

type SensitivityKey string

const (
	SensitivityInk         SensitivityKey = "ink"
	SensitivityEnergy      SensitivityKey = "energy"
	SensitivityFixedSalary SensitivityKey = "fixed_salary"
)

// SensitivityKeys is the row order of a sensitivity table.
var SensitivityKeys = []SensitivityKey{SensitivityInk, SensitivityEnergy, SensitivityFixedSalary}

func ParseSensitivityKey(s string) (SensitivityKey, error) {
	for _, k := range SensitivityKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sensitivity parameter %q", s)
}

type SensitivityRow struct {
	Parameter         SensitivityKey `json:"parameter"`
	Percent           float64        `json:"percent"`
	BaseValue         float64        `json:"base_value"`
	AdjustedValue     float64        `json:"adjusted_value"`
	BaseRoi           float64        `json:"base_roi_percent"`
	AdjustedRoi       float64        `json:"adjusted_roi_percent"`
	BaseBreakEven     *float64       `json:"base_break_even_meters"`
	AdjustedBreakEven *float64       `json:"adjusted_break_even_meters"`
}

// ComputeSensitivity perturbs one input by percent and re-runs the cost,
// financial and break-even stages with everything else held at baseline.
//
// ink scales InkMlPerMeter and energy scales MachinePowerKw, so only the
// variable cost per meter moves; fixed_salary scales MonthlySalaryUsd, so only
// the monthly fixed cost moves. Capacity is never recomputed.
func ComputeSensitivity(key SensitivityKey, percent float64, base Evaluation) SensitivityRow {
	factor := 1 + percent/100
	in := base.Inputs

	var baseValue float64
	switch key {
	case SensitivityInk:
		baseValue = in.Consumables.InkMlPerMeter
		in.Consumables.InkMlPerMeter = baseValue * factor
	case SensitivityEnergy:
		baseValue = in.Consumables.MachinePowerKw
		in.Consumables.MachinePowerKw = baseValue * factor
	case SensitivityFixedSalary:
		baseValue = in.FixedCosts.MonthlySalaryUsd
		in.FixedCosts.MonthlySalaryUsd = baseValue * factor
	}

	cost := ComputeCost(in.Consumables, in.FixedCosts, base.Capacity)
	financial := ComputeFinancial(cost, in.SellPriceUsdPerMeter, base.Capacity, in.FixedCosts.TotalInvestmentUsd())
	breakEven := ComputeBreakEven(cost, in.SellPriceUsdPerMeter, base.Capacity)

	return SensitivityRow{
		Parameter:         key,
		Percent:           percent,
		BaseValue:         baseValue,
		AdjustedValue:     baseValue * factor,
		BaseRoi:           base.Financial.AnnualRoiPercent,
		AdjustedRoi:       financial.AnnualRoiPercent,
		BaseBreakEven:     copyOptional(base.BreakEven.BreakEvenMeters),
		AdjustedBreakEven: breakEven.BreakEvenMeters,
	}
}

// ComputeSensitivityTable returns one row per SensitivityKeys entry.
func ComputeSensitivityTable(percent float64, base Evaluation) []SensitivityRow {
	rows := make([]SensitivityRow, 0, len(SensitivityKeys))
	for _, k := range SensitivityKeys {
		rows = append(rows, ComputeSensitivity(k, percent, base))
	}
	return rows
}
