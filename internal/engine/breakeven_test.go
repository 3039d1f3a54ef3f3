package engine

import (
	"math"
	"testing"
)

func TestComputeBreakEven_ZeroMargin(t *testing.T) {
	in := DefaultInputs()
	in.SellPriceUsdPerMeter = Evaluate(in).Cost.TotalVariableCostPerMeter

	r := Evaluate(in).BreakEven

	if r.Status != StatusNotComputable {
		t.Errorf("status = %s, want %s", r.Status, StatusNotComputable)
	}
	if r.BreakEvenMeters != nil {
		t.Errorf("break-even = %v, want nil", *r.BreakEvenMeters)
	}
	if !r.MarginNonPositive() {
		t.Error("expected non-positive margin")
	}
	if r.MinimumViablePriceUsdPerMeter == nil {
		t.Error("minimum viable price should not depend on margin")
	}
}

func TestComputeBreakEven_NegativeMargin(t *testing.T) {
	in := DefaultInputs()
	in.SellPriceUsdPerMeter = 1

	r := Evaluate(in).BreakEven

	if r.Status != StatusNotComputable {
		t.Errorf("status = %s, want %s", r.Status, StatusNotComputable)
	}
	if r.MarginUsdPerMeter >= 0 {
		t.Errorf("margin = %f, want negative", r.MarginUsdPerMeter)
	}
}

func TestComputeBreakEven_AtMinimumViablePrice(t *testing.T) {
	in := DefaultInputs()
	in.SellPriceUsdPerMeter = *Evaluate(in).BreakEven.MinimumViablePriceUsdPerMeter

	e := Evaluate(in)

	if math.Abs(*e.BreakEven.BreakEvenMeters-e.Capacity.MonthlyProductionMeters) > 1e-6 {
		t.Errorf("break-even = %f, want production %f", *e.BreakEven.BreakEvenMeters, e.Capacity.MonthlyProductionMeters)
	}
	if e.BreakEven.Status == StatusBelow || e.BreakEven.Status == StatusNotComputable {
		t.Errorf("status = %s, want %s or %s", e.BreakEven.Status, StatusAt, StatusAbove)
	}
}

func TestComputeBreakEven_JustShortOfBreakEven(t *testing.T) {
	in := DefaultInputs()
	base := Evaluate(in)
	in.SellPriceUsdPerMeter = base.Cost.TotalVariableCostPerMeter +
		base.Cost.MonthlyFixedCostUsd/(base.Capacity.MonthlyProductionMeters+0.5)

	e := Evaluate(in)

	if e.BreakEven.Status != StatusAt {
		t.Errorf("status = %s, want %s (break-even %f, production %f)",
			e.BreakEven.Status, StatusAt, *e.BreakEven.BreakEvenMeters, e.Capacity.MonthlyProductionMeters)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		production float64
		breakEven  float64
		want       BreakEvenStatus
	}{
		{"well above", 57600, 16159.76, StatusAbove},
		{"well below", 1000, 16159.76, StatusBelow},
		{"just above", 1000.5, 1000, StatusAbove},
		{"inside tolerance below", 999.5, 1000, StatusAt},
		{"tolerance edge", 999, 1000, StatusBelow},
		{"exact", 1000, 1000, StatusAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.production, tt.breakEven); got != tt.want {
				t.Errorf("classify(%v, %v) = %s, want %s", tt.production, tt.breakEven, got, tt.want)
			}
		})
	}
}
