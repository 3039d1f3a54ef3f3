package engine

type FinancialSummary struct {
	SellPriceUsdPerMeter   float64 `json:"sell_price_usd_per_meter"`
	MonthlyRevenueUsd      float64 `json:"monthly_revenue_usd"`
	MonthlyVariableCostUsd float64 `json:"monthly_variable_cost_usd"`
	MonthlyFixedCostUsd    float64 `json:"monthly_fixed_cost_usd"`
	MonthlyProfitUsd       float64 `json:"monthly_profit_usd"`
	AnnualRoiPercent       float64 `json:"annual_roi_percent"`
}

// ComputeFinancial turns costs and a selling price into revenue, profit and ROI.
// ROI against zero capital is 0.
func ComputeFinancial(cost CostSnapshot, sellPrice float64, capacity CapacitySnapshot, totalInvestment float64) FinancialSummary {
	revenue := sellPrice * capacity.MonthlyProductionMeters
	variable := cost.TotalVariableCostPerMeter * capacity.MonthlyProductionMeters
	profit := revenue - variable - cost.MonthlyFixedCostUsd

	roi := 0.0
	if totalInvestment > 0 {
		roi = profit * monthsPerYear / totalInvestment * 100
	}

	return FinancialSummary{
		SellPriceUsdPerMeter:   sellPrice,
		MonthlyRevenueUsd:      revenue,
		MonthlyVariableCostUsd: variable,
		MonthlyFixedCostUsd:    cost.MonthlyFixedCostUsd,
		MonthlyProfitUsd:       profit,
		AnnualRoiPercent:       roi,
	}
}
