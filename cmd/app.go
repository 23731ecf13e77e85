// Package cmd implements the CLI application to plan portfolio contributions.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&allocateCmd{}, "planning")
	c.Register(&planCmd{}, "planning")

	c.Register(&projectCmd{}, "projections")
	c.Register(&goalCmd{}, "projections")
	c.Register(&rampCmd{}, "projections")
	c.Register(&chartCmd{}, "projections")

	c.Register(&explainCmd{}, "assistance")
	c.Register(&topicCmd{}, "assistance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currencyFlag = flag.String("currency", "EUR", "ISO currency code used for all amounts")

// printMarkdown renders a markdown report for the terminal. On any rendering
// problem the raw markdown is still printed, a report must never be lost to
// a styling failure.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(markdown); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(markdown)
}
