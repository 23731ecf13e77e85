package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/planfolio/planner"
	"github.com/planfolio/planner/renderer"
	"google.golang.org/genai"
)

const explainModel = "gemini-2.5-flash"

const explainInstruction = `You are a careful personal-finance assistant.
You are given a monthly contribution plan computed by a deterministic
calculator. Explain in plain language why each asset receives its amount,
relative to the portfolio's current and target weights. Do not give
investment advice and do not question the target weights.`

// explainCmd holds the flags for the 'explain' subcommand.
type explainCmd struct {
	assets    assetFlag
	monthly   float64
	threshold float64
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "narrate a contribution plan with Gemini" }
func (*explainCmd) Usage() string {
	return `pcp explain -a NAME:AMOUNT:TARGET [-a ...] -m <amount>

  Computes the same plan as 'pcp allocate' and asks Gemini for a
  plain-language narration of it. Requires Gemini credentials in the
  environment.

`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.assets, "a", "Asset as NAME:AMOUNT:TARGET, repeatable")
	f.Float64Var(&c.monthly, "m", 0, "Monthly contribution amount")
	f.Float64Var(&c.threshold, "threshold", 0, "Rebalance threshold in percentage points (currently inert)")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := renderer.PlanMarkdown(&renderer.PlanReport{
		Portfolio: p,
		Monthly:   monthly,
		Threshold: planner.Percent(c.threshold),
		Plan:      plan,
	})

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	resp, err := client.Models.GenerateContent(ctx, explainModel, genai.Text(report), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: explainInstruction}}},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking Gemini:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(report)
	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
