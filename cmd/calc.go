package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sip"
	"github.com/google/subcommands"
)

type calcCmd struct {
	planFlags
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the maturity value of a monthly contribution" }
func (*calcCmd) Usage() string {
	return `sipc calc [-amount <monthly>] [-years <n>] [-rate <percent>] [-f <plan file>] [-tax]

  Computes the SIP calculator: the maturity value, total investment and wealth
  gained of a monthly contribution. Flags that are not set keep the value of
  the previous computation (or the defaults on first use).

Usage Examples:
$ sipc calc -amount 5000 -years 10 -rate 12
$ sipc calc -fund 3 -tax

`
}

func (c *calcCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runCalculator(ctx, f, &c.planFlags, calculatorKey(SIPKey), sip.SIP)
}

type goalCmd struct {
	planFlags
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "compute the monthly contribution needed to reach a target" }
func (*goalCmd) Usage() string {
	return `sipc goal [-target <amount>] [-years <n>] [-rate <percent>] [-f <plan file>] [-tax]

  Computes the goal planner: the monthly contribution required to reach a
  target amount. Flags that are not set keep the value of the previous
  computation (or the defaults on first use).

Usage Examples:
$ sipc goal -target 1000000 -years 10 -rate 12
$ sipc goal -f house.yaml

`
}

func (c *goalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runCalculator(ctx, f, &c.planFlags, calculatorKey(GoalKey), sip.Goal)
}

func runCalculator(ctx context.Context, f *flag.FlagSet, p *planFlags, key string, mode sip.Mode) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	s, closer, err := OpenSession(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the storage: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	md, err := p.recompute(f, s, mode)
	if err != nil {
		printValidation(err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
