package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/planfolio/planner"
)

// ProjectionReport describes a simulated contribution plan: its parameters
// and the resulting month-by-month projection.
type ProjectionReport struct {
	InitialValue planner.Money
	Monthly      planner.Money
	Years        int
	AnnualReturn planner.Percent
	Projection   planner.Projection
}

// ProjectionMarkdown renders a projection to a markdown string: the final
// value followed by the value at each year end.
func ProjectionMarkdown(r *ProjectionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Projection")
	doc.PlainText(fmt.Sprintf("Starting from %s, contributing %s per month for %d years at %s annual return.",
		r.InitialValue, r.Monthly, r.Years, r.AnnualReturn))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Final Value"),
			md.Bold(r.Projection.Final.Round().String()),
		},
	})

	doc.H2("Year by Year")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Year", "Value at Year End"},
	}
	for i, end := range r.Projection.YearEnds() {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			end.Round().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
