package engine

// Schedule is the part of ProductionParameters a scenario may change.
// The machine itself (width, speeds, pass usage) stays at baseline.
type Schedule struct {
	ShiftsPerDay          float64 `json:"shifts_per_day"`
	HoursPerShift         float64 `json:"hours_per_shift"`
	OperatingDaysPerMonth float64 `json:"operating_days_per_month"`
	DowntimeHoursPerMonth float64 `json:"downtime_hours_per_month"`
}

type ScenarioInputs struct {
	Consumables ConsumablesParameters `json:"consumables"`
	Schedule    Schedule              `json:"schedule"`
}

// ScenarioFromInputs seeds an alternate scenario identical to the baseline.
func ScenarioFromInputs(in Inputs) ScenarioInputs {
	return ScenarioInputs{
		Consumables: in.Consumables,
		Schedule: Schedule{
			ShiftsPerDay:          in.Production.ShiftsPerDay,
			HoursPerShift:         in.Production.HoursPerShift,
			OperatingDaysPerMonth: in.Production.OperatingDaysPerMonth,
			DowntimeHoursPerMonth: in.Production.DowntimeHoursPerMonth,
		},
	}
}

// Apply returns a copy of in with the scenario consumables and schedule.
func (s ScenarioInputs) Apply(in Inputs) Inputs {
	in.Consumables = s.Consumables
	in.Production.ShiftsPerDay = s.Schedule.ShiftsPerDay
	in.Production.HoursPerShift = s.Schedule.HoursPerShift
	in.Production.OperatingDaysPerMonth = s.Schedule.OperatingDaysPerMonth
	in.Production.DowntimeHoursPerMonth = s.Schedule.DowntimeHoursPerMonth
	return in
}

type ScenarioSide struct {
	Capacity  CapacitySnapshot `json:"capacity"`
	Cost      CostSnapshot     `json:"cost"`
	Financial FinancialSummary `json:"financial"`
	BreakEven BreakEvenResult  `json:"break_even"`
}

// ScenarioDelta is scenario minus base. BreakEvenMeters is nil unless both
// sides have a break-even volume.
type ScenarioDelta struct {
	MonthlyProductionMeters   float64  `json:"monthly_production_meters"`
	TotalVariableCostPerMeter float64  `json:"total_variable_cost_per_meter"`
	MonthlyRevenueUsd         float64  `json:"monthly_revenue_usd"`
	MonthlyVariableCostUsd    float64  `json:"monthly_variable_cost_usd"`
	MonthlyProfitUsd          float64  `json:"monthly_profit_usd"`
	AnnualRoiPercent          float64  `json:"annual_roi_percent"`
	BreakEvenMeters           *float64 `json:"break_even_meters"`
}

type ScenarioComparison struct {
	Base     ScenarioSide  `json:"base"`
	Scenario ScenarioSide  `json:"scenario"`
	Delta    ScenarioDelta `json:"delta"`
}

// CompareScenario recomputes capacity and costs under the alternate
// consumables and schedule. The baseline monthly fixed cost, selling price and
// investment are reused unchanged on the scenario side.
func CompareScenario(base Evaluation, alt ScenarioInputs) ScenarioComparison {
	in := alt.Apply(base.Inputs)
	price := base.Inputs.SellPriceUsdPerMeter
	investment := base.Inputs.FixedCosts.TotalInvestmentUsd()

	capacity := ComputeCapacity(in.Production)
	cost := ComputeCost(in.Consumables, base.Inputs.FixedCosts, capacity)
	cost.MonthlyFixedCostUsd = base.Cost.MonthlyFixedCostUsd
	cost.FixedCostPerMeter = PerMeter(cost.MonthlyFixedCostUsd, capacity)

	scenario := ScenarioSide{
		Capacity:  capacity,
		Cost:      cost,
		Financial: ComputeFinancial(cost, price, capacity, investment),
		BreakEven: ComputeBreakEven(cost, price, capacity),
	}
	baseSide := ScenarioSide{
		Capacity:  base.Capacity,
		Cost:      base.Cost,
		Financial: base.Financial,
		BreakEven: base.BreakEven,
	}
	baseSide.Cost.FixedCostPerMeter = copyOptional(base.Cost.FixedCostPerMeter)
	baseSide.BreakEven.BreakEvenMeters = copyOptional(base.BreakEven.BreakEvenMeters)
	baseSide.BreakEven.MinimumViablePriceUsdPerMeter = copyOptional(base.BreakEven.MinimumViablePriceUsdPerMeter)

	return ScenarioComparison{
		Base:     baseSide,
		Scenario: scenario,
		Delta:    delta(baseSide, scenario),
	}
}

func delta(base, scenario ScenarioSide) ScenarioDelta {
	d := ScenarioDelta{
		MonthlyProductionMeters:   scenario.Capacity.MonthlyProductionMeters - base.Capacity.MonthlyProductionMeters,
		TotalVariableCostPerMeter: scenario.Cost.TotalVariableCostPerMeter - base.Cost.TotalVariableCostPerMeter,
		MonthlyRevenueUsd:         scenario.Financial.MonthlyRevenueUsd - base.Financial.MonthlyRevenueUsd,
		MonthlyVariableCostUsd:    scenario.Financial.MonthlyVariableCostUsd - base.Financial.MonthlyVariableCostUsd,
		MonthlyProfitUsd:          scenario.Financial.MonthlyProfitUsd - base.Financial.MonthlyProfitUsd,
		AnnualRoiPercent:          scenario.Financial.AnnualRoiPercent - base.Financial.AnnualRoiPercent,
	}
	if base.BreakEven.BreakEvenMeters != nil && scenario.BreakEven.BreakEvenMeters != nil {
		v := *scenario.BreakEven.BreakEvenMeters - *base.BreakEven.BreakEvenMeters
		d.BreakEvenMeters = &v
	}
	return d
}
