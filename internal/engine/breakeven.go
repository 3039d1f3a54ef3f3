package engine

import "math"

// BreakEvenToleranceMeters is how far below the break-even volume production
// may fall and still count as "at" break-even.
const BreakEvenToleranceMeters = 1.0

type BreakEvenStatus string

const (
	StatusAbove         BreakEvenStatus = "above"
	StatusAt            BreakEvenStatus = "at"
	StatusBelow         BreakEvenStatus = "below"
	StatusNotComputable BreakEvenStatus = "not_computable"
)

// BreakEvenResult carries the break-even volume and the minimum viable price.
// They are separate figures: BreakEvenMeters is the volume at which profit is
// zero for the current price, MinimumViablePriceUsdPerMeter is the price at
// which profit is zero for the current volume.
type BreakEvenResult struct {
	MarginUsdPerMeter             float64         `json:"margin_usd_per_meter"`
	BreakEvenMeters               *float64        `json:"break_even_meters"`
	MinimumViablePriceUsdPerMeter *float64        `json:"minimum_viable_price_usd_per_meter"`
	Status                        BreakEvenStatus `json:"status"`
}

// MarginNonPositive reports that the selling price does not cover variable cost,
// so no finite volume breaks even.
func (r BreakEvenResult) MarginNonPositive() bool {
	return r.BreakEvenMeters == nil
}

func ComputeBreakEven(cost CostSnapshot, sellPrice float64, capacity CapacitySnapshot) BreakEvenResult {
	margin := sellPrice - cost.TotalVariableCostPerMeter

	r := BreakEvenResult{
		MarginUsdPerMeter: margin,
		Status:            StatusNotComputable,
	}

	if capacity.HasProduction() {
		price := cost.MonthlyFixedCostUsd/capacity.MonthlyProductionMeters + cost.TotalVariableCostPerMeter
		r.MinimumViablePriceUsdPerMeter = &price
	}

	if margin <= 0 {
		return r
	}

	be := cost.MonthlyFixedCostUsd / margin
	r.BreakEvenMeters = &be
	r.Status = classify(capacity.MonthlyProductionMeters, be)

	return r
}

func classify(production, breakEven float64) BreakEvenStatus {
	switch {
	case production > breakEven:
		return StatusAbove
	case math.Abs(production-breakEven) < BreakEvenToleranceMeters:
		return StatusAt
	default:
		return StatusBelow
	}
}
