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

type planSaveCmd struct {
	planFlags
	sip bool
}

func (*planSaveCmd) Name() string     { return "save" }
func (*planSaveCmd) Synopsis() string { return "save a plan under a name" }
func (*planSaveCmd) Usage() string {
	return `sipc save -name <name> [-sip] [plan flags]

  Saves the goal planner's current plan, edited by the plan flags, in the
  saved plans. Use -sip to save the SIP calculator's plan instead.

Usage Examples:
$ sipc save -name "House" -target 2500000 -years 12 -rate 11
$ sipc save -name "Retirement" -sip

`
}

func (c *planSaveCmd) SetFlags(f *flag.FlagSet) {
	c.planFlags.SetFlags(f)
	f.BoolVar(&c.sip, "sip", false, "Start from the SIP calculator's plan.")
}

func (c *planSaveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key := GoalKey
	if c.sip {
		key = SIPKey
	}
	s, closer, err := OpenSession(ctx, calculatorKey(key))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the storage: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	plan, err := c.apply(f, s.State().Plan)
	if err != nil {
		printValidation(err)
		return subcommands.ExitFailure
	}
	if plan.Name == "" {
		fmt.Fprintln(os.Stderr, "Error: a plan needs a -name")
		return subcommands.ExitUsageError
	}

	book, bookCloser, err := OpenPlanBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the saved plans: %v\n", err)
		return subcommands.ExitFailure
	}
	defer bookCloser()

	saved, err := book.Add(plan.Name, plan)
	if err != nil {
		printValidation(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved plan %q as %s\n", saved.Name, saved.ID)
	return subcommands.ExitSuccess
}

type plansCmd struct {
	currency string
}

func (*plansCmd) Name() string     { return "plans" }
func (*plansCmd) Synopsis() string { return "list the saved plans" }
func (*plansCmd) Usage() string {
	return `sipc plans [-currency <code>]

  Lists the saved plans with their status and the totals.
`
}

func (c *plansCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", sip.DefaultCurrency, "Currency of the totals.")
}

func (c *plansCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closer, err := OpenPlanBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the saved plans: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()
	printMarkdown(renderer.RenderPlans(book, c.currency))
	return subcommands.ExitSuccess
}

type planRmCmd struct{}

func (*planRmCmd) Name() string     { return "rm" }
func (*planRmCmd) Synopsis() string { return "remove saved plans" }
func (*planRmCmd) Usage() string {
	return `sipc rm <id>...

  Removes saved plans by ID.
`
}

func (c *planRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *planRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing plan ID")
		return subcommands.ExitUsageError
	}
	book, closer, err := OpenPlanBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the saved plans: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		if err := book.Remove(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", id, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Removed plan %s\n", id)
	}
	return status
}

type planStatusCmd struct{}

func (*planStatusCmd) Name() string     { return "status" }
func (*planStatusCmd) Synopsis() string { return "change the status of a saved plan" }
func (*planStatusCmd) Usage() string {
	return `sipc status <id> draft|active|paused|completed

  Changes the status of a saved plan.
`
}

func (c *planStatusCmd) SetFlags(f *flag.FlagSet) {}

func (c *planStatusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a plan ID and a status")
		return subcommands.ExitUsageError
	}
	status, err := sip.ParsePlanStatus(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, closer, err := OpenPlanBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the saved plans: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	saved, err := book.SetStatus(f.Arg(0), status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Plan %q is %s\n", saved.Name, saved.Status)
	return subcommands.ExitSuccess
}

type fundsCmd struct{}

func (*fundsCmd) Name() string             { return "funds" }
func (*fundsCmd) Synopsis() string         { return "list the funds a plan can use" }
func (*fundsCmd) Usage() string            { return "sipc funds\n\n  Lists the funds, use their ID with -fund.\n" }
func (c *fundsCmd) SetFlags(f *flag.FlagSet) {}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderFunds(sip.Funds))
	return subcommands.ExitSuccess
}
