package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultInputs()))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Inputs)
		field  string
	}{
		{"width too small", func(in *Inputs) { in.Production.PrintWidthMeters = 0 }, "width"},
		{"fractional shifts", func(in *Inputs) { in.Production.ShiftsPerDay = 1.5 }, "shifts"},
		{"negative price", func(in *Inputs) { in.SellPriceUsdPerMeter = -1 }, "sell_price"},
		{"day overflow", func(in *Inputs) { in.Production.ShiftsPerDay = 3; in.Production.HoursPerShift = 10 }, "hours"},
		{"downtime overflow", func(in *Inputs) { in.Production.DowntimeHoursPerMonth = 200 }, "downtime"},
		{"nan", func(in *Inputs) { in.Consumables.InkMlPerMeter = math.NaN() }, "ink_ml"},
		{"bad mode", func(in *Inputs) { in.Production.DowntimeMode = "weekly" }, "downtime_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInputs()
			tt.modify(&in)

			err := Validate(in)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %v", err)
			keys := make([]string, 0, len(verrs))
			for _, e := range verrs {
				keys = append(keys, e.Key)
			}
			assert.Contains(t, keys, tt.field)
		})
	}
}

func TestSetField(t *testing.T) {
	in := DefaultInputs()

	out, err := SetField(in, "sell_price", 5.25)
	require.NoError(t, err)
	assert.Equal(t, 5.25, out.SellPriceUsdPerMeter)
	assert.Equal(t, 4.5, in.SellPriceUsdPerMeter)

	_, err = SetField(in, "sell_price", 101)
	assert.Error(t, err)

	_, err = SetField(in, "colour", 1)
	var fe FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "colour", fe.Key)
}

func TestFields_KeysAreUniqueAndReadable(t *testing.T) {
	seen := map[string]bool{}
	in := DefaultInputs()
	for _, f := range Fields {
		assert.False(t, seen[f.Key], f.Key)
		seen[f.Key] = true
		assert.NoError(t, f.Check(f.Value(in)), f.Key)
	}
	assert.Len(t, seen, 25)
}

func TestSetScenarioField(t *testing.T) {
	s := ScenarioFromInputs(DefaultInputs())

	out, err := SetScenarioField(s, "shifts", 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.Schedule.ShiftsPerDay)

	out, err = SetScenarioField(out, "ink_price", 40)
	require.NoError(t, err)
	assert.Equal(t, 40.0, out.Consumables.InkPriceUsdPerLiter)
	assert.Equal(t, 2.0, out.Schedule.ShiftsPerDay)

	_, err = SetScenarioField(s, "sell_price", 5)
	assert.Error(t, err)
	_, err = SetScenarioField(s, "width", 2)
	assert.Error(t, err)
}

func TestValidateScenario(t *testing.T) {
	s := ScenarioFromInputs(DefaultInputs())
	assert.NoError(t, ValidateScenario(s))

	s.Schedule.DowntimeHoursPerMonth = 500
	assert.Error(t, ValidateScenario(s))
}

func TestValidateSensitivityPercent(t *testing.T) {
	assert.NoError(t, ValidateSensitivityPercent(-50))
	assert.NoError(t, ValidateSensitivityPercent(10))
	assert.Error(t, ValidateSensitivityPercent(75))

	for _, p := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := ValidateSensitivityPercent(p)

		var fe FieldError
		require.True(t, errors.As(err, &fe), "percent %v", p)
		assert.Equal(t, "percent", fe.Key)
	}
}
