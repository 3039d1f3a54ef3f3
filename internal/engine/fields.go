package engine

import (
	"fmt"
	"math"
)

type FieldGroup string

const (
	GroupProduction  FieldGroup = "production"
	GroupConsumables FieldGroup = "consumables"
	GroupFixedCosts  FieldGroup = "fixed_costs"
	GroupPricing     FieldGroup = "pricing"
)

// Field describes one user-editable input: its key, valid range and where it
// lives in Inputs.
type Field struct {
	Key     string     `json:"key"`
	Group   FieldGroup `json:"group"`
	Min     float64    `json:"min"`
	Max     float64    `json:"max"`
	Integer bool       `json:"integer"`
	Unit    string     `json:"unit"`

	ref func(*Inputs) *float64
}

// Value reads the field from in.
func (f Field) Value(in Inputs) float64 {
	return *f.ref(&in)
}

// Check reports whether v is acceptable for the field.
func (f Field) Check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FieldError{Key: f.Key, Message: "must be a finite number"}
	}
	if v < f.Min || v > f.Max {
		return FieldError{Key: f.Key, Message: fmt.Sprintf("must be between %g and %g", f.Min, f.Max)}
	}
	if f.Integer && v != math.Trunc(v) {
		return FieldError{Key: f.Key, Message: "must be a whole number"}
	}
	return nil
}

// Fields is the input registry shared by every form-like collaborator.
var Fields = []Field{
	{Key: "width", Group: GroupProduction, Min: 0.1, Max: 10, Unit: "m",
		ref: func(in *Inputs) *float64 { return &in.Production.PrintWidthMeters }},
	{Key: "speed1", Group: GroupProduction, Min: 0, Max: 2000, Unit: "m/h",
		ref: func(in *Inputs) *float64 { return &in.Production.SpeedPass1MetersPerHour }},
	{Key: "speed2", Group: GroupProduction, Min: 0, Max: 2000, Unit: "m/h",
		ref: func(in *Inputs) *float64 { return &in.Production.SpeedPass2MetersPerHour }},
	{Key: "usage1", Group: GroupProduction, Min: 0, Max: 100, Integer: true, Unit: "%",
		ref: func(in *Inputs) *float64 { return &in.Production.UsagePass1Percent }},
	{Key: "shifts", Group: GroupProduction, Min: 1, Max: 3, Integer: true,
		ref: func(in *Inputs) *float64 { return &in.Production.ShiftsPerDay }},
	{Key: "hours", Group: GroupProduction, Min: 1, Max: 24, Integer: true, Unit: "h",
		ref: func(in *Inputs) *float64 { return &in.Production.HoursPerShift }},
	{Key: "days", Group: GroupProduction, Min: 1, Max: 31, Integer: true,
		ref: func(in *Inputs) *float64 { return &in.Production.OperatingDaysPerMonth }},
	{Key: "downtime", Group: GroupProduction, Min: 0, Max: 744, Unit: "h",
		ref: func(in *Inputs) *float64 { return &in.Production.DowntimeHoursPerMonth }},

	{Key: "ink_ml", Group: GroupConsumables, Min: 0, Max: 1000, Unit: "ml/m",
		ref: func(in *Inputs) *float64 { return &in.Consumables.InkMlPerMeter }},
	{Key: "ink_price", Group: GroupConsumables, Min: 0, Max: 500, Unit: "USD/L",
		ref: func(in *Inputs) *float64 { return &in.Consumables.InkPriceUsdPerLiter }},
	{Key: "printing_waste", Group: GroupConsumables, Min: 0, Max: 900, Unit: "%",
		ref: func(in *Inputs) *float64 { return &in.Consumables.PrintingPaperWastePercent }},
	{Key: "printing_price", Group: GroupConsumables, Min: 0, Max: 10, Unit: "USD/unit",
		ref: func(in *Inputs) *float64 { return &in.Consumables.PrintingPaperPriceUsdPerUnit }},
	{Key: "protective_waste", Group: GroupConsumables, Min: 0, Max: 900, Unit: "%",
		ref: func(in *Inputs) *float64 { return &in.Consumables.ProtectivePaperWastePercent }},
	{Key: "protective_price", Group: GroupConsumables, Min: 0, Max: 10, Unit: "USD/unit",
		ref: func(in *Inputs) *float64 { return &in.Consumables.ProtectivePaperPriceUsdPerUnit }},
	{Key: "machine_kw", Group: GroupConsumables, Min: 0, Max: 1000, Unit: "kW",
		ref: func(in *Inputs) *float64 { return &in.Consumables.MachinePowerKw }},
	{Key: "electricity_price", Group: GroupConsumables, Min: 0, Max: 10, Unit: "USD/kWh",
		ref: func(in *Inputs) *float64 { return &in.Consumables.ElectricityPriceUsdPerKwh }},

	{Key: "salary", Group: GroupFixedCosts, Min: 0, Max: 100000, Unit: "USD/month",
		ref: func(in *Inputs) *float64 { return &in.FixedCosts.MonthlySalaryUsd }},
	{Key: "printer_investment", Group: GroupFixedCosts, Min: 0, Max: 1e7, Unit: "USD",
		ref: func(in *Inputs) *float64 { return &in.FixedCosts.PrinterInvestmentUsd }},
	{Key: "printer_years", Group: GroupFixedCosts, Min: 1, Max: 50, Integer: true, Unit: "years",
		ref: func(in *Inputs) *float64 { return &in.FixedCosts.PrinterDepreciationYears }},
	{Key: "calender_investment", Group: GroupFixedCosts, Min: 0, Max: 1e7, Unit: "USD",
		ref: func(in *Inputs) *float64 { return &in.FixedCosts.CalenderInvestmentUsd }},
	{Key: "calender_years", Group: GroupFixedCosts, Min: 1, Max: 50, Integer: true, Unit: "years",
		ref: func(in *Inputs) *float64 { return &in.FixedCosts.CalenderDepreciationYears }},
	{Key: "rent", Group: GroupFixedCosts, Min: 0, Max: 50000, Unit: "USD/month",
		ref: func(in *Inputs) *float64 { return &in.FixedCosts.MonthlyRentUsd }},
	{Key: "other_fixed", Group: GroupFixedCosts, Min: 0, Max: 100000, Unit: "USD/month",
		ref: func(in *Inputs) *float64 { return &in.FixedCosts.OtherMonthlyFixedUsd }},
	{Key: "maintenance", Group: GroupFixedCosts, Min: 0, Max: 100000, Unit: "USD/month",
		ref: func(in *Inputs) *float64 { return &in.FixedCosts.MonthlyMaintenanceUsd }},

	{Key: "sell_price", Group: GroupPricing, Min: 0, Max: 100, Unit: "USD/m",
		ref: func(in *Inputs) *float64 { return &in.SellPriceUsdPerMeter }},
}

// scheduleKeys are the production fields a scenario may override.
var scheduleKeys = map[string]bool{"shifts": true, "hours": true, "days": true, "downtime": true}

func LookupField(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// IsScenarioField reports whether key can be set on ScenarioInputs.
func IsScenarioField(key string) bool {
	f, ok := LookupField(key)
	if !ok {
		return false
	}
	return f.Group == GroupConsumables || scheduleKeys[key]
}

// SetField returns a copy of in with key set to v. The single-field range is
// checked; cross-field rules are left to Validate.
func SetField(in Inputs, key string, v float64) (Inputs, error) {
	f, ok := LookupField(key)
	if !ok {
		return in, FieldError{Key: key, Message: "unknown field"}
	}
	if err := f.Check(v); err != nil {
		return in, err
	}
	*f.ref(&in) = v
	return in, nil
}

func SetScenarioField(s ScenarioInputs, key string, v float64) (ScenarioInputs, error) {
	if !IsScenarioField(key) {
		return s, FieldError{Key: key, Message: "not a scenario field"}
	}
	in, err := SetField(s.Apply(Inputs{}), key, v)
	if err != nil {
		return s, err
	}
	return ScenarioFromInputs(in), nil
}
