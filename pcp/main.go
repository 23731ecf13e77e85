package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/planfolio/planner/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the pcp command. It is a no-op
// unless invoked by the shell's completion machinery.
func completion() {
	assets := map[string]complete.Predictor{
		"a":         predict.Something,
		"m":         predict.Something,
		"threshold": predict.Nothing,
	}
	solver := map[string]complete.Predictor{
		"initial": predict.Something,
		"goal":    predict.Something,
		"years":   predict.Something,
		"return":  predict.Something,
		"extra":   predict.Something,
		"tax":     predict.Nothing,
	}
	pcp := &complete.Command{
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "NOK"},
		},
		Sub: map[string]*complete.Command{
			"allocate": {Flags: assets},
			"plan":     {},
			"project": {Flags: map[string]complete.Predictor{
				"initial": predict.Something,
				"m":       predict.Something,
				"years":   predict.Something,
				"return":  predict.Something,
				"extra":   predict.Something,
			}},
			"goal": {Flags: solver},
			"ramp": {Flags: map[string]complete.Predictor{
				"initial": predict.Something,
				"goal":    predict.Something,
				"years":   predict.Something,
				"return":  predict.Something,
				"start":   predict.Something,
				"extra":   predict.Something,
				"tax":     predict.Nothing,
			}},
			"chart": {Flags: map[string]complete.Predictor{
				"out":     predict.Files("*.png"),
				"initial": predict.Something,
				"m":       predict.Something,
				"start":   predict.Something,
				"final":   predict.Something,
				"years":   predict.Something,
				"return":  predict.Something,
				"goal":    predict.Something,
			}},
			"explain": {Flags: assets},
			"topic":   {Args: predict.Set{"readme", "allocate", "project", "goal", "ramp", "chart", "plan", "*"}},
		},
	}
	pcp.Complete("pcp")
}
