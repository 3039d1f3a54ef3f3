package engine

import (
	"fmt"
	"math"
	"strings"
)

const (
	maxHoursPerDay        = 24
	MinSensitivityPercent = -50.0
	MaxSensitivityPercent = 50.0
)

type FieldError struct {
	Key     string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "invalid inputs: " + strings.Join(msgs, "; ")
}

// Validate range-checks every field of in. The engine itself never rejects
// input; transports call Validate before Evaluate.
func Validate(in Inputs) error {
	var errs ValidationErrors
	for _, f := range Fields {
		if err := f.Check(f.Value(in)); err != nil {
			errs = append(errs, err.(FieldError))
		}
	}

	p := in.Production
	if _, ok := ParseDowntimeMode(string(p.DowntimeMode)); !ok {
		errs = append(errs, FieldError{Key: "downtime_mode", Message: "must be adjusted or nominal"})
	}
	errs = append(errs, checkSchedule(p.ShiftsPerDay, p.HoursPerShift, p.OperatingDaysPerMonth, p.DowntimeHoursPerMonth)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateScenario checks the scenario's consumables and schedule with the same
// ranges as the baseline form.
func ValidateScenario(s ScenarioInputs) error {
	in := s.Apply(DefaultInputs())

	var errs ValidationErrors
	for _, f := range Fields {
		if !IsScenarioField(f.Key) {
			continue
		}
		if err := f.Check(f.Value(in)); err != nil {
			errs = append(errs, err.(FieldError))
		}
	}
	sc := s.Schedule
	errs = append(errs, checkSchedule(sc.ShiftsPerDay, sc.HoursPerShift, sc.OperatingDaysPerMonth, sc.DowntimeHoursPerMonth)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ValidateSensitivityPercent(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return FieldError{Key: "percent", Message: "must be a finite number"}
	}
	if p < MinSensitivityPercent || p > MaxSensitivityPercent {
		return FieldError{Key: "percent", Message: fmt.Sprintf("must be between %g and %g", MinSensitivityPercent, MaxSensitivityPercent)}
	}
	return nil
}

func checkSchedule(shifts, hours, days, downtime float64) []FieldError {
	var errs []FieldError
	if shifts*hours > maxHoursPerDay {
		errs = append(errs, FieldError{Key: "hours", Message: "shifts per day times hours per shift exceeds 24"})
	}
	if total := shifts * hours * days; downtime > total {
		errs = append(errs, FieldError{Key: "downtime", Message: fmt.Sprintf("exceeds %g scheduled hours", total)})
	}
	return errs
}
