package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/planfolio/planner"
)

// GoalReport describes a solved constant-contribution goal: the target and
// the constant monthly amount that reaches it.
type GoalReport struct {
	Goal         planner.Money
	Years        int
	AnnualReturn planner.Percent
	TaxRate      planner.Percent
	Monthly      planner.Money
}

// ConstantGoalMarkdown renders a constant-contribution goal answer to a
// markdown string, with the flat per-year table.
func ConstantGoalMarkdown(r *GoalReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Constant Contribution Plan")
	goalLine := fmt.Sprintf("To reach %s in %d years at %s annual return, contribute %s per month.",
		r.Goal, r.Years, r.AnnualReturn, r.Monthly)
	if r.TaxRate > 0 {
		goalLine += fmt.Sprintf(" The goal is net of a %s capital-gains tax at the end of the period.", r.TaxRate)
	}
	doc.PlainText(goalLine)

	if r.Monthly.IsZero() {
		doc.PlainText("The current portfolio already grows past the goal on its own.")
		return doc.String()
	}

	doc.H2("Contributions by Year")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Year", "Monthly"},
	}
	for year := 1; year <= r.Years; year++ {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", year),
			r.Monthly.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
