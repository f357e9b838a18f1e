package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockledger/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately
// when none is in progress. Install with COMP_INSTALL=1 stk.
func completion() {
	subs := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		subs[c.Name()] = &complete.Command{Flags: flagPredictors(c)}
	}

	root := &complete.Command{
		Sub: subs,
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.yaml"),
			"data-dir": predict.Dirs("*"),
		},
	}
	root.Complete("stk")
}

// flagPredictors derives a predictor per flag from the command's own
// flag set, so completion stays in sync with the commands.
func flagPredictors(c subcommands.Command) map[string]complete.Predictor {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)

	predictors := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		predictors[fl.Name] = predict.Something
	})
	return predictors
}
