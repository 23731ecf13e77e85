package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/planfolio/planner"
)

// PlanReport bundles everything needed to render a monthly contribution
// plan: the portfolio it was computed for, the contribution being split, and
// the resulting split.
type PlanReport struct {
	Portfolio *planner.Portfolio
	Monthly   planner.Money
	Threshold planner.Percent
	Plan      planner.ContributionPlan
}

// PlanMarkdown renders a contribution plan to a markdown string.
func PlanMarkdown(r *PlanReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Contribution Plan")
	doc.PlainText(fmt.Sprintf("Total portfolio value: %s, contributing %s this month.",
		r.Portfolio.TotalValue(), r.Monthly))

	doc.H2("Weights")
	weights := r.Portfolio.CurrentWeights()
	weightTable := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Holding", "Current", "Target"},
	}
	for _, asset := range r.Portfolio.Assets() {
		weightTable.Rows = append(weightTable.Rows, []string{
			asset,
			r.Portfolio.Holdings[asset].String(),
			weights[asset].String(),
			r.Portfolio.Targets[asset].String(),
		})
	}
	doc.Table(weightTable)

	doc.H2("This Month's Contributions")
	planTable := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Asset", "Contribution"},
	}
	for _, asset := range r.Plan.Assets() {
		planTable.Rows = append(planTable.Rows, []string{
			asset,
			r.Plan[asset].String(),
		})
	}
	planTable.Rows = append(planTable.Rows, []string{
		md.Bold("Total"),
		md.Bold(r.Plan.Total().String()),
	})
	doc.Table(planTable)

	return doc.String()
}
