package planner

import (
	"errors"
	"math"
	"testing"
)

func TestSimulateConstantPlan_ZeroReturn(t *testing.T) {
	proj, err := SimulateConstantPlan(EUR(0), EUR(100), 1, 0, EUR(0))
	if err != nil {
		t.Fatalf("SimulateConstantPlan() error = %v", err)
	}
	if len(proj.Trace) != 12 {
		t.Fatalf("trace length = %d, want 12", len(proj.Trace))
	}
	// At 0% the plan is straight accumulation.
	if !proj.Final.Equal(EUR(1200)) {
		t.Errorf("final = %s, want %s", proj.Final, EUR(1200))
	}
	if !proj.Trace[11].Equal(proj.Final) {
		t.Errorf("last trace entry %s differs from final %s", proj.Trace[11], proj.Final)
	}
}

func TestSimulateConstantPlan_TraceLength(t *testing.T) {
	for _, years := range []int{1, 7, 30} {
		proj, err := SimulateConstantPlan(EUR(10000), EUR(250), years, 6, EUR(0))
		if err != nil {
			t.Fatalf("SimulateConstantPlan(%d years) error = %v", years, err)
		}
		if proj.Months() != years*12 {
			t.Errorf("trace length = %d, want %d", proj.Months(), years*12)
		}
	}
}

func TestSimulateConstantPlan_ContributionBeforeGrowth(t *testing.T) {
	// One year at 12.68% annual is close to 1% monthly; the first month must
	// grow the contribution too: (0+100)*(1+rm), strictly above 100.
	proj, err := SimulateConstantPlan(EUR(0), EUR(100), 1, 12, EUR(0))
	if err != nil {
		t.Fatalf("SimulateConstantPlan() error = %v", err)
	}
	if !proj.Trace[0].GreaterThan(EUR(100)) {
		t.Errorf("first month = %s, want > %s (contribution added before growth)", proj.Trace[0], EUR(100))
	}
}

func TestSimulateConstantPlan_ExtraSavings(t *testing.T) {
	base, err := SimulateConstantPlan(EUR(1000), EUR(0), 1, 0, EUR(0))
	if err != nil {
		t.Fatalf("SimulateConstantPlan() error = %v", err)
	}
	withExtra, err := SimulateConstantPlan(EUR(1000), EUR(0), 1, 0, EUR(500))
	if err != nil {
		t.Fatalf("SimulateConstantPlan() error = %v", err)
	}
	if got := withExtra.Final.Sub(base.Final); !got.Equal(EUR(500)) {
		t.Errorf("extra savings added %s to the final value, want %s", got, EUR(500))
	}
}

func TestSimulateConstantPlan_Monotonic(t *testing.T) {
	// Bisection over the contribution requires the final value to be
	// non-decreasing in the monthly amount.
	prev := -1.0
	for _, monthly := range []float64{0, 50, 100, 200, 400} {
		proj, err := SimulateConstantPlan(EUR(5000), EUR(monthly), 10, 5, EUR(0))
		if err != nil {
			t.Fatalf("SimulateConstantPlan() error = %v", err)
		}
		if proj.Final.AsFloat() <= prev {
			t.Fatalf("final value %f not increasing at monthly=%f", proj.Final.AsFloat(), monthly)
		}
		prev = proj.Final.AsFloat()
	}
}

func TestSimulateConstantPlan_InvalidYears(t *testing.T) {
	for _, years := range []int{0, -3} {
		_, err := SimulateConstantPlan(EUR(0), EUR(100), years, 5, EUR(0))
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("years=%d: error = %v, want InvalidInputError", years, err)
		}
	}
}

func TestSimulateRamp_FlatRampMatchesConstantPlan(t *testing.T) {
	ramp, err := SimulateRamp(EUR(100), EUR(100), 5, 4, EUR(2000))
	if err != nil {
		t.Fatalf("SimulateRamp() error = %v", err)
	}
	constant, err := SimulateConstantPlan(EUR(2000), EUR(100), 5, 4, EUR(0))
	if err != nil {
		t.Fatalf("SimulateConstantPlan() error = %v", err)
	}
	if diff := math.Abs(ramp.Final.AsFloat() - constant.Final.AsFloat()); diff > 1e-6 {
		t.Errorf("flat ramp final %f differs from constant plan final %f", ramp.Final.AsFloat(), constant.Final.AsFloat())
	}
}

func TestSimulateRamp_ZeroReturn(t *testing.T) {
	// 100 -> 200 linearly over 12 months at 0%: the contributions alone are
	// the arithmetic series summing to 12*150.
	proj, err := SimulateRamp(EUR(100), EUR(200), 1, 0, EUR(0))
	if err != nil {
		t.Fatalf("SimulateRamp() error = %v", err)
	}
	if len(proj.Trace) != 12 {
		t.Fatalf("trace length = %d, want 12", len(proj.Trace))
	}
	if diff := math.Abs(proj.Final.AsFloat() - 1800); diff > 1e-9 {
		t.Errorf("final = %f, want 1800", proj.Final.AsFloat())
	}
}

func TestSimulateRamp_InvalidYears(t *testing.T) {
	_, err := SimulateRamp(EUR(100), EUR(200), 0, 5, EUR(0))
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want InvalidInputError", err)
	}
}

func TestRampContribution(t *testing.T) {
	tests := []struct {
		name            string
		initial, final  float64
		m, months       int
		want            float64
	}{
		{"first month", 100, 220, 0, 120, 100},
		{"last month", 100, 220, 119, 120, 220},
		{"midpoint", 100, 200, 60, 121, 150},
		{"single month pins to final", 100, 220, 0, 1, 220},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rampContribution(tc.initial, tc.final, tc.m, tc.months)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("rampContribution(%f, %f, %d, %d) = %f, want %f", tc.initial, tc.final, tc.m, tc.months, got, tc.want)
			}
		})
	}
}

func TestProjection_YearEnds(t *testing.T) {
	proj, err := SimulateConstantPlan(EUR(0), EUR(100), 3, 0, EUR(0))
	if err != nil {
		t.Fatalf("SimulateConstantPlan() error = %v", err)
	}
	ends := proj.YearEnds()
	if len(ends) != 3 {
		t.Fatalf("YearEnds() length = %d, want 3", len(ends))
	}
	for i, want := range []Money{EUR(1200), EUR(2400), EUR(3600)} {
		if !ends[i].Equal(want) {
			t.Errorf("year %d end = %s, want %s", i+1, ends[i], want)
		}
	}
}
