package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/planfolio/planner"
	"github.com/planfolio/planner/renderer"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct{}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "run an interactive planning session" }
func (*planCmd) Usage() string {
	return `pcp plan

  Walks through a full planning session interactively: assets and target
  weights, this month's contribution split, and optionally the contribution
  schedule needed to reach a future goal.

`
}

func (c *planCmd) SetFlags(_ *flag.FlagSet) {}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := &planSession{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}
	if err := session.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// planSession is the mutable state of one interactive session. Everything
// collected here is handed to the planner package as immutable values.
type planSession struct {
	in  *bufio.Scanner
	out io.Writer
}

var errSessionClosed = fmt.Errorf("input closed before the session finished")

func (s *planSession) run() error {
	fmt.Fprintln(s.out, "This session helps you plan your monthly contributions: it splits this")
	fmt.Fprintln(s.out, "month's contribution to move your portfolio toward its target weights,")
	fmt.Fprintln(s.out, "and can solve for the contributions needed to reach a future goal.")
	fmt.Fprintln(s.out)

	builder := newPortfolioBuilder(*currencyFlag)

	n, err := s.promptInt("How many assets do you want to enter (e.g. ETFs + Bitcoin)? ", 1)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := s.promptAsset(builder, i+1); err != nil {
			return err
		}
	}

	p, err := builder.Build()
	if err != nil {
		return err
	}

	monthly, err := s.promptFloat("How much do you want to contribute next month? ", 0)
	if err != nil {
		return err
	}
	threshold, err := s.promptFloat("Rebalance threshold in percentage points? (0 to disable) ", 0)
	if err != nil {
		return err
	}

	monthlyM := planner.M(monthly, *currencyFlag)
	plan, err := planner.ComputeContributionPlan(p, monthlyM, planner.Percent(threshold))
	if err != nil {
		return err
	}
	printMarkdown(renderer.PlanMarkdown(&renderer.PlanReport{
		Portfolio: p,
		Monthly:   monthlyM,
		Threshold: planner.Percent(threshold),
		Plan:      plan,
	}))

	answer, err := s.promptLine("Compute the contribution needed for a future goal? (y/n) ")
	if err != nil || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return err
	}
	return s.runGoalSection(p)
}

func (s *planSession) runGoalSection(p *planner.Portfolio) error {
	cur := *currencyFlag

	goal, err := s.promptFloat("How much money would you like the portfolio to reach? ", 0)
	if err != nil {
		return err
	}
	years, err := s.promptInt("In how many years? ", 1)
	if err != nil {
		return err
	}
	ret, err := s.promptFloat("What annual return do you want to assume (e.g. 6, 7 or 8)? ", 0)
	if err != nil {
		return err
	}
	mode, err := s.promptLine("Constant contributions (c) or growing contributions (g)? ")
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "c":
		monthly, err := planner.ConstantMonthlyAnnuity(p.TotalValue(), planner.M(goal, cur), years, planner.Percent(ret))
		if err != nil {
			return err
		}
		printMarkdown(renderer.ConstantGoalMarkdown(&renderer.GoalReport{
			Goal:         planner.M(goal, cur),
			Years:        years,
			AnnualReturn: planner.Percent(ret),
			Monthly:      monthly,
		}))
	case "g":
		start, err := s.promptFloat("How much would you like to start contributing per month? ", 0)
		if err != nil {
			return err
		}
		final, schedule, err := planner.RequiredGrowingMonthlies(
			p.TotalValue(), planner.M(goal, cur), years, planner.Percent(ret),
			planner.M(start, cur), planner.M(0, cur), 0)
		if err != nil {
			return err
		}
		printMarkdown(renderer.ScheduleMarkdown(&renderer.ScheduleReport{
			Goal:           planner.M(goal, cur),
			Years:          years,
			AnnualReturn:   planner.Percent(ret),
			InitialMonthly: planner.M(start, cur),
			FinalMonthly:   final,
			Entries:        schedule,
		}))
	default:
		fmt.Fprintln(s.out, "Unrecognized mode, choose 'c' for constant or 'g' for growing.")
	}
	return nil
}

// promptAsset collects one asset's name, invested amount and target weight,
// re-prompting until each is valid.
func (s *planSession) promptAsset(b *portfolioBuilder, i int) error {
	var name string
	for {
		line, err := s.promptLine(fmt.Sprintf("Name of asset #%d: ", i))
		if err != nil {
			return err
		}
		name = strings.TrimSpace(line)
		if name == "" {
			fmt.Fprintln(s.out, "The name must not be empty.")
			continue
		}
		if b.Has(name) {
			fmt.Fprintln(s.out, "That asset was already entered, use a unique name.")
			continue
		}
		break
	}
	amount, err := s.promptFloat(fmt.Sprintf("How much is currently invested in %q? ", name), 0)
	if err != nil {
		return err
	}
	target, err := s.promptFloat(fmt.Sprintf("What target weight do you want for %q (in %%)? ", name), 0)
	if err != nil {
		return err
	}
	return b.Add(name, amount, target)
}

func (s *planSession) promptLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", errSessionClosed
	}
	return s.in.Text(), nil
}

// promptFloat re-prompts until it reads a number not below min.
func (s *planSession) promptFloat(prompt string, min float64) (float64, error) {
	for {
		line, err := s.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number (e.g. 1000.50).")
			continue
		}
		if v < min {
			fmt.Fprintf(s.out, "Please enter a number of at least %g.\n", min)
			continue
		}
		return v, nil
	}
}

// promptInt re-prompts until it reads an integer not below min.
func (s *planSession) promptInt(prompt string, min int) (int, error) {
	for {
		line, err := s.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a whole number.")
			continue
		}
		if v < min {
			fmt.Fprintf(s.out, "Please enter a number of at least %d.\n", min)
			continue
		}
		return v, nil
	}
}
