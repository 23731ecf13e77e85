package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/planfolio/planner"
	"github.com/planfolio/planner/renderer"
)

// rampCmd holds the flags for the 'ramp' subcommand.
type rampCmd struct {
	initial float64
	goal    float64
	years   int
	ret     float64
	start   float64
	extra   float64
	tax     float64
}

func (*rampCmd) Name() string     { return "ramp" }
func (*rampCmd) Synopsis() string { return "find the growing contribution schedule for a goal" }
func (*rampCmd) Usage() string {
	return `pcp ramp -goal <amount> -years <n> -return <pct> -start <amount> [-initial <amount>] [-extra <amount>] [-tax <pct>]

  Finds the linearly growing monthly contribution schedule that reaches a
  future net-worth goal: the first month's contribution is fixed at -start
  and the solver finds the amount the schedule must grow to.

Usage Examples:
$ pcp ramp -goal 100000 -years 10 -return 6 -start 150

`
}

func (c *rampCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "initial", 0, "Current portfolio value")
	f.Float64Var(&c.goal, "goal", 0, "Target portfolio value at the end of the horizon")
	f.IntVar(&c.years, "years", 0, "Planning horizon in years")
	f.Float64Var(&c.ret, "return", 0, "Assumed annual return in percent")
	f.Float64Var(&c.start, "start", 0, "Monthly contribution in the first month")
	f.Float64Var(&c.extra, "extra", 0, "Extra savings added to the starting value")
	f.Float64Var(&c.tax, "tax", 0, "Capital-gains tax rate in percent")
}

func (c *rampCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur := *currencyFlag
	final, schedule, err := planner.RequiredGrowingMonthlies(
		planner.M(c.initial, cur),
		planner.M(c.goal, cur),
		c.years,
		planner.Percent(c.ret),
		planner.M(c.start, cur),
		planner.M(c.extra, cur),
		planner.Percent(c.tax),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ScheduleMarkdown(&renderer.ScheduleReport{
		Goal:           planner.M(c.goal, cur),
		Years:          c.years,
		AnnualReturn:   planner.Percent(c.ret),
		TaxRate:        planner.Percent(c.tax),
		InitialMonthly: planner.M(c.start, cur),
		FinalMonthly:   final,
		Entries:        schedule,
	}))

	return subcommands.ExitSuccess
}
