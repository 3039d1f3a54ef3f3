package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSensitivity_Ink(t *testing.T) {
	base := Evaluate(DefaultInputs())

	row := ComputeSensitivity(SensitivityInk, 10, base)

	assert.Equal(t, SensitivityInk, row.Parameter)
	assert.InDelta(t, 5.0, row.BaseValue, eps)
	assert.InDelta(t, 5.5, row.AdjustedValue, eps)
	assert.InDelta(t, base.Financial.AnnualRoiPercent, row.BaseRoi, eps)
	assert.InDelta(t, 228.63368, row.AdjustedRoi, 1e-4)
	require.NotNil(t, row.AdjustedBreakEven)
	assert.InDelta(t, 45215/2.76965, *row.AdjustedBreakEven, 1e-3)
	assert.Greater(t, *row.AdjustedBreakEven, *row.BaseBreakEven)
}

func TestComputeSensitivity_Energy(t *testing.T) {
	base := Evaluate(DefaultInputs())

	row := ComputeSensitivity(SensitivityEnergy, -10, base)

	assert.InDelta(t, 60.0, row.BaseValue, eps)
	assert.InDelta(t, 54.0, row.AdjustedValue, eps)
	assert.Greater(t, row.AdjustedRoi, row.BaseRoi)
	assert.Less(t, *row.AdjustedBreakEven, *row.BaseBreakEven)
}

func TestComputeSensitivity_SalaryMovesFixedCostOnly(t *testing.T) {
	base := Evaluate(DefaultInputs())

	row := ComputeSensitivity(SensitivityFixedSalary, 10, base)

	assert.InDelta(t, 25340.0, row.BaseValue, eps)
	assert.InDelta(t, 27874.0, row.AdjustedValue, eps)
	// margin is unchanged, so break-even grows by exactly the added fixed cost over margin
	assert.InDelta(t, *row.BaseBreakEven+2534/base.BreakEven.MarginUsdPerMeter, *row.AdjustedBreakEven, 1e-6)
}

func TestComputeSensitivity_ZeroPercentIsIdentity(t *testing.T) {
	base := Evaluate(DefaultInputs())

	for _, row := range ComputeSensitivityTable(0, base) {
		assert.InDelta(t, row.BaseRoi, row.AdjustedRoi, eps, row.Parameter)
		assert.InDelta(t, *row.BaseBreakEven, *row.AdjustedBreakEven, eps, row.Parameter)
	}
}

func TestComputeSensitivity_DoesNotMutateBase(t *testing.T) {
	base := Evaluate(DefaultInputs())
	before := *base.BreakEven.BreakEvenMeters

	row := ComputeSensitivity(SensitivityInk, 50, base)
	*row.BaseBreakEven = 0

	assert.Equal(t, before, *base.BreakEven.BreakEvenMeters)
	assert.Equal(t, 5.0, base.Inputs.Consumables.InkMlPerMeter)
}

func TestComputeSensitivityTable_Order(t *testing.T) {
	rows := ComputeSensitivityTable(DefaultSensitivityPercent, Evaluate(DefaultInputs()))

	require.Len(t, rows, 3)
	assert.Equal(t, SensitivityInk, rows[0].Parameter)
	assert.Equal(t, SensitivityEnergy, rows[1].Parameter)
	assert.Equal(t, SensitivityFixedSalary, rows[2].Parameter)
}

func TestParseSensitivityKey(t *testing.T) {
	k, err := ParseSensitivityKey("energy")
	require.NoError(t, err)
	assert.Equal(t, SensitivityEnergy, k)

	_, err = ParseSensitivityKey("rent")
	assert.Error(t, err)
}
