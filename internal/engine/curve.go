package engine

import (
	"iter"
	"math"
)

// DefaultCurvePoints is the sample count used for break-even charts.
const DefaultCurvePoints = 100

// curveHeadroom extends the x axis past the break-even volume.
const curveHeadroom = 1.2

type CurvePoint struct {
	Meters       float64 `json:"meters"`
	RevenueUsd   float64 `json:"revenue_usd"`
	TotalCostUsd float64 `json:"total_cost_usd"`
}

// Curve samples revenue and total cost from 0 to max(production, 1.2*BE),
// or to production alone when there is no break-even volume. Points are evenly
// spaced with both ends included. The sequence is empty when the range is 0
// or points < 2, and can be ranged over any number of times.
func Curve(e Evaluation, points int) iter.Seq[CurvePoint] {
	upper := e.Capacity.MonthlyProductionMeters
	if be := e.BreakEven.BreakEvenMeters; be != nil {
		upper = math.Max(upper, *be*curveHeadroom)
	}

	price := e.Inputs.SellPriceUsdPerMeter
	variable := e.Cost.TotalVariableCostPerMeter
	fixed := e.Cost.MonthlyFixedCostUsd

	return func(yield func(CurvePoint) bool) {
		if upper <= 0 || points < 2 {
			return
		}
		step := upper / float64(points-1)
		for i := 0; i < points; i++ {
			x := step * float64(i)
			if i == points-1 {
				x = upper
			}
			if !yield(CurvePoint{Meters: x, RevenueUsd: price * x, TotalCostUsd: fixed + variable*x}) {
				return
			}
		}
	}
}
