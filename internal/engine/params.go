package engine

// DowntimeMode selects how downtime enters the capacity model.
type DowntimeMode string

const (
	// DowntimeAdjusted subtracts downtime from scheduled hours before computing
	// production and electricity consumption.
	DowntimeAdjusted DowntimeMode = "adjusted"
	// DowntimeNominal computes production and electricity on scheduled hours and only
	// reports downtime as lost production.
	DowntimeNominal DowntimeMode = "nominal"
)

// ParseDowntimeMode maps a config or request value to a mode. Empty means adjusted.
func ParseDowntimeMode(s string) (DowntimeMode, bool) {
	switch DowntimeMode(s) {
	case "", DowntimeAdjusted:
		return DowntimeAdjusted, true
	case DowntimeNominal:
		return DowntimeNominal, true
	default:
		return "", false
	}
}

type ProductionParameters struct {
	PrintWidthMeters        float64      `json:"print_width_meters"`
	SpeedPass1MetersPerHour float64      `json:"speed_pass1_meters_per_hour"`
	SpeedPass2MetersPerHour float64      `json:"speed_pass2_meters_per_hour"`
	UsagePass1Percent       float64      `json:"usage_pass1_percent"`
	ShiftsPerDay            float64      `json:"shifts_per_day"`
	HoursPerShift           float64      `json:"hours_per_shift"`
	OperatingDaysPerMonth   float64      `json:"operating_days_per_month"`
	DowntimeHoursPerMonth   float64      `json:"downtime_hours_per_month"`
	DowntimeMode            DowntimeMode `json:"downtime_mode,omitempty"`
}

// UsagePass2Percent is the complement of the first-pass share.
func (p ProductionParameters) UsagePass2Percent() float64 {
	return 100 - p.UsagePass1Percent
}

type ConsumablesParameters struct {
	InkMlPerMeter                  float64 `json:"ink_ml_per_meter"`
	InkPriceUsdPerLiter            float64 `json:"ink_price_usd_per_liter"`
	PrintingPaperWastePercent      float64 `json:"printing_paper_waste_percent"`
	PrintingPaperPriceUsdPerUnit   float64 `json:"printing_paper_price_usd_per_unit"`
	ProtectivePaperWastePercent    float64 `json:"protective_paper_waste_percent"`
	ProtectivePaperPriceUsdPerUnit float64 `json:"protective_paper_price_usd_per_unit"`
	MachinePowerKw                 float64 `json:"machine_power_kw"`
	ElectricityPriceUsdPerKwh      float64 `json:"electricity_price_usd_per_kwh"`
}

// PrintingPaperUnitsPerMeter is the paper consumed per printed meter including waste.
func (c ConsumablesParameters) PrintingPaperUnitsPerMeter() float64 {
	return 1 + c.PrintingPaperWastePercent/100
}

func (c ConsumablesParameters) ProtectivePaperUnitsPerMeter() float64 {
	return 1 + c.ProtectivePaperWastePercent/100
}

type FixedCostParameters struct {
	MonthlySalaryUsd          float64 `json:"monthly_salary_usd"`
	PrinterInvestmentUsd      float64 `json:"printer_investment_usd"`
	PrinterDepreciationYears  float64 `json:"printer_depreciation_years"`
	CalenderInvestmentUsd     float64 `json:"calender_investment_usd"`
	CalenderDepreciationYears float64 `json:"calender_depreciation_years"`
	MonthlyRentUsd            float64 `json:"monthly_rent_usd"`
	OtherMonthlyFixedUsd      float64 `json:"other_monthly_fixed_usd"`
	MonthlyMaintenanceUsd     float64 `json:"monthly_maintenance_usd"`
}

// TotalInvestmentUsd is the capital base used for ROI.
func (f FixedCostParameters) TotalInvestmentUsd() float64 {
	return f.PrinterInvestmentUsd + f.CalenderInvestmentUsd
}

// Inputs is the complete snapshot handed to Evaluate. It is passed by value;
// nothing in the engine keeps a reference to it.
type Inputs struct {
	Production           ProductionParameters  `json:"production"`
	Consumables          ConsumablesParameters `json:"consumables"`
	FixedCosts           FixedCostParameters   `json:"fixed_costs"`
	SellPriceUsdPerMeter float64               `json:"sell_price_usd_per_meter"`
}

// DefaultInputs returns the reference line: a 1.6 m printer on one 8 h shift, 24 days a month.
func DefaultInputs() Inputs {
	return Inputs{
		Production: ProductionParameters{
			PrintWidthMeters:        1.6,
			SpeedPass1MetersPerHour: 400,
			SpeedPass2MetersPerHour: 200,
			UsagePass1Percent:       50,
			ShiftsPerDay:            1,
			HoursPerShift:           8,
			OperatingDaysPerMonth:   24,
			DowntimeHoursPerMonth:   0,
			DowntimeMode:            DowntimeAdjusted,
		},
		Consumables: ConsumablesParameters{
			InkMlPerMeter:                  5,
			InkPriceUsdPerLiter:            56.7,
			PrintingPaperWastePercent:      5,
			PrintingPaperPriceUsdPerUnit:   0.85,
			ProtectivePaperWastePercent:    3,
			ProtectivePaperPriceUsdPerUnit: 0.20,
			MachinePowerKw:                 60,
			ElectricityPriceUsdPerKwh:      1.6,
		},
		FixedCosts: FixedCostParameters{
			MonthlySalaryUsd:          25340,
			PrinterInvestmentUsd:      450000,
			PrinterDepreciationYears:  4,
			CalenderInvestmentUsd:     150000,
			CalenderDepreciationYears: 5,
			MonthlyRentUsd:            8000,
			OtherMonthlyFixedUsd:      0,
			MonthlyMaintenanceUsd:     0,
		},
		SellPriceUsdPerMeter: 4.5,
	}
}

// DefaultSensitivityPercent is the perturbation used when the caller gives none.
const DefaultSensitivityPercent = 10.0
