package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sip"
	"github.com/etnz/sip/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct {
	goal        bool
	granularity string
	tax         bool
	series      bool
	html        bool
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display a calculator without recomputing it" }
func (*viewCmd) Usage() string {
	return `sipc view [-goal] [-granularity monthly|yearly] [-tax] [-html]

  Displays the last computation of a calculator. Changing the granularity is
  remembered for the next views.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.goal, "goal", false, "View the goal planner instead of the SIP calculator.")
	f.StringVar(&c.granularity, "granularity", "", "Series granularity: 'monthly' or 'yearly'.")
	f.BoolVar(&c.tax, "tax", false, "Show the tax-adjusted corpus.")
	f.BoolVar(&c.series, "series", true, "Show the projection series.")
	f.BoolVar(&c.html, "html", false, "Print HTML instead of markdown.")
}

func (c *viewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.granularity != "" {
		g, err := sip.ParseGranularity(c.granularity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		s.SetGranularity(g)
	}

	md := renderer.RenderProjection(s.State(), renderer.ProjectionOptions{WithTax: c.tax, SkipSeries: !c.series})
	if !c.html {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}
	html, err := renderer.HTML(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting to HTML: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(html)
	return subcommands.ExitSuccess
}

type resetCmd struct {
	goal bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "restore a calculator to its defaults" }
func (*resetCmd) Usage() string {
	return `sipc reset [-goal]

  Restores the calculator inputs to their defaults and hides the results.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.goal, "goal", false, "Reset the goal planner instead of the SIP calculator.")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	s.Reset()
	printMarkdown(renderer.RenderProjection(s.State(), renderer.ProjectionOptions{}))
	return subcommands.ExitSuccess
}
