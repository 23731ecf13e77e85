package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/planfolio/planner"
)

// ScheduleReport describes a solved growing-contribution plan: the goal it
// targets, the ramp endpoints, and the per-year breakdown.
type ScheduleReport struct {
	Goal           planner.Money
	Years          int
	AnnualReturn   planner.Percent
	TaxRate        planner.Percent
	InitialMonthly planner.Money
	FinalMonthly   planner.Money
	Entries        []planner.AnnualContribution
}

// ScheduleMarkdown renders a growing-contribution schedule to a markdown
// string.
func ScheduleMarkdown(r *ScheduleReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Growing Contribution Plan")
	goalLine := fmt.Sprintf("To reach %s in %d years at %s annual return, start contributing %s per month and finish at %s per month.",
		r.Goal, r.Years, r.AnnualReturn, r.InitialMonthly, r.FinalMonthly)
	if r.TaxRate > 0 {
		goalLine += fmt.Sprintf(" The goal is net of a %s capital-gains tax at the end of the period.", r.TaxRate)
	}
	doc.PlainText(goalLine)

	doc.H2("Contributions by Year")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "Start", "End", "Average"},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.Year),
			e.Start.String(),
			e.End.String(),
			e.Avg.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
