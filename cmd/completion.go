package cmd

import (
	"flag"
	"strconv"

	"github.com/etnz/sip"
	"github.com/etnz/sip/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors completes the values of flags by name, other flags complete to anything.
var flagPredictors = map[string]complete.Predictor{
	"f":           predict.Files("*"),
	"o":           predict.Files("*"),
	"frontmatter": predict.Files("*"),
	"granularity": predict.Set{"monthly", "yearly"},
	"timing":      predict.Set{"beginning", "end"},
	"store":       predict.Set{"dir", "postgres", "memory"},
	"store-dir":   predict.Dirs("*"),
	"fund":        fundIDs(),
}

func fundIDs() predict.Set {
	ids := make(predict.Set, 0, len(sip.Funds))
	for _, f := range sip.Funds {
		ids = append(ids, strconv.Itoa(f.ID))
	}
	return ids
}

func flagSetPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

// Completion returns the shell completion of the commands registered in c and the global flags.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagSetPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagSetPredictors(fs)}
		switch cmd.Name() {
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		case "status":
			sub.Args = predict.Set{"draft", "active", "paused", "completed"}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}
