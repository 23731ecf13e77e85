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

// allocateCmd holds the flags for the 'allocate' subcommand.
type allocateCmd struct {
	assets    assetFlag
	monthly   float64
	threshold float64
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "split a monthly contribution across assets" }
func (*allocateCmd) Usage() string {
	return `pcp allocate -a NAME:AMOUNT:TARGET [-a ...] -m <amount> [-threshold <pct>]

  Splits a monthly contribution across the portfolio's assets so that the
  new money flows to the assets furthest below their target weight, without
  selling anything.

Usage Examples:
$ pcp allocate -a "MSCI World:9000:70" -a "Bitcoin:1000:30" -m 300

`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.assets, "a", "Asset as NAME:AMOUNT:TARGET, repeatable")
	f.Float64Var(&c.monthly, "m", 0, "Monthly contribution amount")
	f.Float64Var(&c.threshold, "threshold", 0, "Rebalance threshold in percentage points (currently inert)")
}

func (c *allocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.monthly < 0 {
		fmt.Fprintln(os.Stderr, "Error: monthly contribution must not be negative")
		return subcommands.ExitUsageError
	}
	if c.threshold < 0 {
		fmt.Fprintln(os.Stderr, "Error: threshold must not be negative")
		return subcommands.ExitUsageError
	}

	p, err := buildPortfolio(&c.assets, *currencyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building portfolio: %v\n", err)
		return subcommands.ExitUsageError
	}

	monthly := planner.M(c.monthly, *currencyFlag)
	plan, err := planner.ComputeContributionPlan(p, monthly, planner.Percent(c.threshold))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing plan: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PlanMarkdown(&renderer.PlanReport{
		Portfolio: p,
		Monthly:   monthly,
		Threshold: planner.Percent(c.threshold),
		Plan:      plan,
	}))

	return subcommands.ExitSuccess
}
