package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/sip"
	"github.com/goccy/go-json"
	"github.com/google/subcommands"
)

type stateCmd struct {
	goal  bool
	query string
}

func (*stateCmd) Name() string     { return "state" }
func (*stateCmd) Synopsis() string { return "print the stored state of a calculator as JSON" }
func (*stateCmd) Usage() string {
	return `sipc state [-goal] [-q <jsonpath>]

  Prints the calculator state as it is stored. Use -q to extract a value with
  a JSONPath expression.

Usage Examples:
$ sipc state -q '$.result.maturityValue'
$ sipc state -goal -q '$.plan.periodicAmount'

`
}

func (c *stateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.goal, "goal", false, "Print the goal planner instead of the SIP calculator.")
	f.StringVar(&c.query, "q", "", "JSONPath expression to extract from the state.")
}

func (c *stateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out, err := queryState(s.State(), c.query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}

// queryState returns the JSON state, or the JSON of the value at 'query' if not empty.
func queryState(state sip.CalculatorState, query string) (string, error) {
	blob, err := sip.MarshalState(state)
	if err != nil {
		return "", err
	}
	var v any
	if err := json.Unmarshal([]byte(blob), &v); err != nil {
		return "", err
	}
	if query != "" {
		if v, err = jsonpath.Get(query, v); err != nil {
			return "", fmt.Errorf("cannot evaluate %q: %w", query, err)
		}
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	return string(out), err
}
