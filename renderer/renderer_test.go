package renderer

import (
	"strings"
	"testing"

	"github.com/planfolio/planner"
)

func eur(v float64) planner.Money { return planner.M(v, "EUR") }

func TestPlanMarkdown(t *testing.T) {
	p := &planner.Portfolio{
		Holdings: map[string]planner.Money{"MSCI World": eur(900), "BTC": eur(100)},
		Targets:  map[string]planner.Percent{"MSCI World": 50, "BTC": 50},
	}
	plan, err := planner.ComputeContributionPlan(p, eur(200), 0)
	if err != nil {
		t.Fatalf("ComputeContributionPlan() error = %v", err)
	}

	got := PlanMarkdown(&PlanReport{Portfolio: p, Monthly: eur(200), Plan: plan})

	for _, want := range []string{
		"# Contribution Plan",
		"## Weights",
		"## This Month's Contributions",
		"MSCI World",
		"BTC",
		"50.00%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PlanMarkdown() missing %q:\n%s", want, got)
		}
	}
	// BTC lags its target and receives the whole contribution.
	if !strings.Contains(got, plan["BTC"].String()) {
		t.Errorf("PlanMarkdown() missing the BTC contribution %s:\n%s", plan["BTC"], got)
	}
}

func TestProjectionMarkdown(t *testing.T) {
	proj, err := planner.SimulateConstantPlan(eur(0), eur(100), 2, 0, eur(0))
	if err != nil {
		t.Fatalf("SimulateConstantPlan() error = %v", err)
	}
	got := ProjectionMarkdown(&ProjectionReport{
		InitialValue: eur(0),
		Monthly:      eur(100),
		Years:        2,
		AnnualReturn: 0,
		Projection:   proj,
	})
	for _, want := range []string{
		"# Projection",
		"## Year by Year",
		proj.Final.Round().String(),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ProjectionMarkdown() missing %q:\n%s", want, got)
		}
	}
}

func TestScheduleMarkdown(t *testing.T) {
	entries, err := planner.AnnualSchedule(eur(100), eur(220), 3)
	if err != nil {
		t.Fatalf("AnnualSchedule() error = %v", err)
	}
	got := ScheduleMarkdown(&ScheduleReport{
		Goal:           eur(50000),
		Years:          3,
		AnnualReturn:   5,
		InitialMonthly: eur(100),
		FinalMonthly:   eur(220),
		Entries:        entries,
	})
	for _, want := range []string{
		"# Growing Contribution Plan",
		"## Contributions by Year",
		"5.00%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ScheduleMarkdown() missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "capital-gains") {
		t.Errorf("ScheduleMarkdown() mentions tax with a zero tax rate:\n%s", got)
	}
}

func TestConstantGoalMarkdown_ZeroMonthly(t *testing.T) {
	got := ConstantGoalMarkdown(&GoalReport{
		Goal:         eur(1000),
		Years:        5,
		AnnualReturn: 5,
		Monthly:      eur(0),
	})
	if !strings.Contains(got, "already grows past the goal") {
		t.Errorf("ConstantGoalMarkdown() missing the no-contribution notice:\n%s", got)
	}
	if strings.Contains(got, "## Contributions by Year") {
		t.Errorf("ConstantGoalMarkdown() renders a schedule for a zero contribution:\n%s", got)
	}
}
