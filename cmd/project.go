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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	initial float64
	monthly float64
	years   int
	ret     float64
	extra   float64
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project a constant contribution plan forward" }
func (*projectCmd) Usage() string {
	return `pcp project -initial <amount> -m <amount> -years <n> -return <pct> [-extra <amount>]

  Projects the portfolio value forward month by month under a constant
  monthly contribution and a fixed annual return.

Usage Examples:
$ pcp project -initial 10000 -m 300 -years 15 -return 6

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "initial", 0, "Current portfolio value")
	f.Float64Var(&c.monthly, "m", 0, "Constant monthly contribution")
	f.IntVar(&c.years, "years", 0, "Planning horizon in years")
	f.Float64Var(&c.ret, "return", 0, "Assumed annual return in percent")
	f.Float64Var(&c.extra, "extra", 0, "Extra savings added to the starting value")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur := *currencyFlag
	proj, err := planner.SimulateConstantPlan(
		planner.M(c.initial, cur),
		planner.M(c.monthly, cur),
		c.years,
		planner.Percent(c.ret),
		planner.M(c.extra, cur),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ProjectionMarkdown(&renderer.ProjectionReport{
		InitialValue: planner.M(c.initial+c.extra, cur),
		Monthly:      planner.M(c.monthly, cur),
		Years:        c.years,
		AnnualReturn: planner.Percent(c.ret),
		Projection:   proj,
	}))

	return subcommands.ExitSuccess
}
