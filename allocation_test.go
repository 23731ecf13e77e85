package planner

import (
	"errors"
	"testing"
)

func TestComputeContributionPlan_Balanced(t *testing.T) {
	p := &Portfolio{
		Holdings: map[string]Money{"A": EUR(500), "B": EUR(500)},
		Targets:  map[string]Percent{"A": 50, "B": 50},
	}
	plan, err := ComputeContributionPlan(p, EUR(100), 0)
	if err != nil {
		t.Fatalf("ComputeContributionPlan() error = %v", err)
	}
	if !plan["A"].Equal(EUR(50)) || !plan["B"].Equal(EUR(50)) {
		t.Errorf("plan = %v, want 50/50", plan)
	}
}

func TestComputeContributionPlan_LaggingAssetGetsEverything(t *testing.T) {
	p := &Portfolio{
		Holdings: map[string]Money{"A": EUR(900), "B": EUR(100)},
		Targets:  map[string]Percent{"A": 50, "B": 50},
	}
	plan, err := ComputeContributionPlan(p, EUR(200), 0)
	if err != nil {
		t.Fatalf("ComputeContributionPlan() error = %v", err)
	}
	// total after is 1200, target value 600 each: A needs nothing, B needs
	// 500, so the whole contribution goes to B.
	if !plan["A"].Equal(EUR(0)) {
		t.Errorf("plan A = %s, want 0", plan["A"])
	}
	if !plan["B"].Equal(EUR(200)) {
		t.Errorf("plan B = %s, want %s", plan["B"], EUR(200))
	}
}

func TestComputeContributionPlan_ProportionalFallback(t *testing.T) {
	// Every asset at or above target: the plan falls back to a split
	// proportional to the target weights instead of investing nothing.
	p := &Portfolio{
		Holdings: map[string]Money{"A": EUR(900), "B": EUR(900)},
		Targets:  map[string]Percent{"A": 50, "B": 50},
	}
	plan, err := ComputeContributionPlan(p, EUR(100), 0)
	if err != nil {
		t.Fatalf("ComputeContributionPlan() error = %v", err)
	}
	if !plan["A"].Equal(EUR(50)) || !plan["B"].Equal(EUR(50)) {
		t.Errorf("plan = %v, want proportional 50/50", plan)
	}
}

func TestComputeContributionPlan_RemainderGoesToFirstLargest(t *testing.T) {
	third := Percent(100.0 / 3)
	p := &Portfolio{
		Holdings: map[string]Money{"A": EUR(0), "B": EUR(0), "C": EUR(0)},
		Targets:  map[string]Percent{"A": third, "B": third, "C": third},
	}
	plan, err := ComputeContributionPlan(p, EUR(100), 0)
	if err != nil {
		t.Fatalf("ComputeContributionPlan() error = %v", err)
	}
	// 33/33/33 leaves 1 unit; all three tie for largest, so the first asset
	// in name order absorbs it.
	if !plan["A"].Equal(EUR(34)) || !plan["B"].Equal(EUR(33)) || !plan["C"].Equal(EUR(33)) {
		t.Errorf("plan = %v, want A:34 B:33 C:33", plan)
	}
	if !plan.Total().Equal(EUR(100)) {
		t.Errorf("plan total = %s, want %s", plan.Total(), EUR(100))
	}
}

func TestComputeContributionPlan_TotalMatchesRoundedContribution(t *testing.T) {
	p := &Portfolio{
		Holdings: map[string]Money{"A": EUR(500), "B": EUR(500)},
		Targets:  map[string]Percent{"A": 50, "B": 50},
	}
	plan, err := ComputeContributionPlan(p, EUR(150.5), 0)
	if err != nil {
		t.Fatalf("ComputeContributionPlan() error = %v", err)
	}
	if !plan.Total().Equal(EUR(151)) {
		t.Errorf("plan total = %s, want %s", plan.Total(), EUR(151))
	}
}

func TestComputeContributionPlan_ZeroContribution(t *testing.T) {
	p := &Portfolio{
		Holdings: map[string]Money{"A": EUR(900), "B": EUR(100)},
		Targets:  map[string]Percent{"A": 50, "B": 50},
	}
	plan, err := ComputeContributionPlan(p, EUR(0), 0)
	if err != nil {
		t.Fatalf("ComputeContributionPlan() error = %v", err)
	}
	if !plan.Total().IsZero() {
		t.Errorf("plan total = %s, want zero", plan.Total())
	}
}

func TestComputeContributionPlan_ThresholdIsInert(t *testing.T) {
	p := &Portfolio{
		Holdings: map[string]Money{"A": EUR(800), "B": EUR(200)},
		Targets:  map[string]Percent{"A": 60, "B": 40},
	}
	without, err := ComputeContributionPlan(p, EUR(300), 0)
	if err != nil {
		t.Fatalf("ComputeContributionPlan() error = %v", err)
	}
	with, err := ComputeContributionPlan(p, EUR(300), 5)
	if err != nil {
		t.Fatalf("ComputeContributionPlan() error = %v", err)
	}
	for asset := range without {
		if !without[asset].Equal(with[asset]) {
			t.Errorf("threshold changed plan for %s: %s vs %s", asset, without[asset], with[asset])
		}
	}
}

func TestComputeContributionPlan_MismatchedAssets(t *testing.T) {
	p := &Portfolio{
		Holdings: map[string]Money{"A": EUR(100)},
		Targets:  map[string]Percent{"B": 100},
	}
	_, err := ComputeContributionPlan(p, EUR(100), 0)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("ComputeContributionPlan() error = %v, want InvalidInputError", err)
	}
}
