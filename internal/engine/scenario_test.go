package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareScenario_IdenticalHasZeroDelta(t *testing.T) {
	base := Evaluate(DefaultInputs())

	cmp := CompareScenario(base, ScenarioFromInputs(base.Inputs))

	assert.Zero(t, cmp.Delta.MonthlyProductionMeters)
	assert.Zero(t, cmp.Delta.MonthlyProfitUsd)
	assert.Zero(t, cmp.Delta.AnnualRoiPercent)
	require.NotNil(t, cmp.Delta.BreakEvenMeters)
	assert.Zero(t, *cmp.Delta.BreakEvenMeters)
}

func TestCompareScenario_SecondShift(t *testing.T) {
	base := Evaluate(DefaultInputs())
	alt := ScenarioFromInputs(base.Inputs)
	alt.Schedule.ShiftsPerDay = 2

	cmp := CompareScenario(base, alt)

	assert.InDelta(t, 115200.0, cmp.Scenario.Capacity.MonthlyProductionMeters, eps)
	assert.InDelta(t, 57600.0, cmp.Delta.MonthlyProductionMeters, eps)
	assert.InDelta(t, base.Cost.MonthlyFixedCostUsd, cmp.Scenario.Cost.MonthlyFixedCostUsd, eps)
	assert.InDelta(t, *base.Cost.FixedCostPerMeter/2, *cmp.Scenario.Cost.FixedCostPerMeter, eps)
	assert.InDelta(t, 0.32, cmp.Scenario.Cost.ElectricityCostPerMeter, eps)
	assert.InDelta(t, 259200.0, cmp.Delta.MonthlyRevenueUsd, eps)
	assert.InDelta(t, 161164.8, cmp.Delta.MonthlyProfitUsd, 1e-4)
	assert.Equal(t, StatusAbove, cmp.Scenario.BreakEven.Status)
}

func TestCompareScenario_CheaperInk(t *testing.T) {
	base := Evaluate(DefaultInputs())
	alt := ScenarioFromInputs(base.Inputs)
	alt.Consumables.InkPriceUsdPerLiter = 40

	cmp := CompareScenario(base, alt)

	assert.InDelta(t, 5.0/1000*40, cmp.Scenario.Cost.InkCostPerMeter, eps)
	assert.Less(t, cmp.Delta.TotalVariableCostPerMeter, 0.0)
	assert.Greater(t, cmp.Delta.MonthlyProfitUsd, 0.0)
	assert.Less(t, *cmp.Delta.BreakEvenMeters, 0.0)
	assert.Zero(t, cmp.Delta.MonthlyProductionMeters)
}

func TestCompareScenario_NoBreakEvenOnScenarioSide(t *testing.T) {
	base := Evaluate(DefaultInputs())
	alt := ScenarioFromInputs(base.Inputs)
	alt.Consumables.InkMlPerMeter = 100

	cmp := CompareScenario(base, alt)

	assert.Equal(t, StatusNotComputable, cmp.Scenario.BreakEven.Status)
	assert.Nil(t, cmp.Delta.BreakEvenMeters)
}

func TestCompareScenario_BaseSideIsCopied(t *testing.T) {
	base := Evaluate(DefaultInputs())
	before := *base.BreakEven.BreakEvenMeters

	cmp := CompareScenario(base, ScenarioFromInputs(base.Inputs))
	*cmp.Base.BreakEven.BreakEvenMeters = 0

	assert.Equal(t, before, *base.BreakEven.BreakEvenMeters)
}

func TestScenarioInputs_ApplyKeepsMachine(t *testing.T) {
	in := DefaultInputs()
	alt := ScenarioFromInputs(in)
	alt.Schedule.HoursPerShift = 10

	out := alt.Apply(in)

	assert.Equal(t, 10.0, out.Production.HoursPerShift)
	assert.Equal(t, in.Production.PrintWidthMeters, out.Production.PrintWidthMeters)
	assert.Equal(t, in.Production.SpeedPass1MetersPerHour, out.Production.SpeedPass1MetersPerHour)
	assert.Equal(t, 8.0, in.Production.HoursPerShift)
}
