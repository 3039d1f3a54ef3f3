package engine

// Evaluation is the result of one pass of the pipeline over an Inputs snapshot.
type Evaluation struct {
	Inputs      Inputs              `json:"inputs"`
	Capacity    CapacitySnapshot    `json:"capacity"`
	Cost        CostSnapshot        `json:"cost"`
	Financial   FinancialSummary    `json:"financial"`
	BreakEven   BreakEvenResult     `json:"break_even"`
	Consumption ConsumptionSnapshot `json:"consumption"`
}

// Evaluate runs capacity, cost, financial summary and break-even in order.
func Evaluate(in Inputs) Evaluation {
	capacity := ComputeCapacity(in.Production)
	cost := ComputeCost(in.Consumables, in.FixedCosts, capacity)

	return Evaluation{
		Inputs:      in,
		Capacity:    capacity,
		Cost:        cost,
		Financial:   ComputeFinancial(cost, in.SellPriceUsdPerMeter, capacity, in.FixedCosts.TotalInvestmentUsd()),
		BreakEven:   ComputeBreakEven(cost, in.SellPriceUsdPerMeter, capacity),
		Consumption: ComputeConsumption(in.Production, in.Consumables, capacity),
	}
}
