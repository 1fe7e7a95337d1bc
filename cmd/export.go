package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/sip"
	"github.com/etnz/sip/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	goal        bool
	granularity string
	output      string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a calculator's projection series as CSV" }
func (*exportCmd) Usage() string {
	return `sipc export [-goal] [-granularity monthly|yearly] [-o <file>]

  Writes the projection series of the last computation as CSV, to stdout by
  default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.goal, "goal", false, "Export the goal planner instead of the SIP calculator.")
	f.StringVar(&c.granularity, "granularity", "", "Series granularity: 'monthly' or 'yearly'. Defaults to the calculator's.")
	f.StringVar(&c.output, "o", "", "Output file.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key := SIPKey
	if c.goal {
		key = GoalKey
	}
	s, closer, err := OpenSession(ctx, calculatorKey(key))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the storage: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	state := s.State()
	if !state.ResultsVisible {
		fmt.Fprintln(os.Stderr, "Error: nothing to export, compute the calculator first")
		return subcommands.ExitFailure
	}
	series := state.Series
	if c.granularity != "" {
		g, err := sip.ParseGranularity(c.granularity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		series = sip.BuildSeries(state.Plan, g)
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := renderer.WriteSeriesCSV(w, series); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
