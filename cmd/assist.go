package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/sip/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct {
	goal    bool
	explain bool
}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*AssistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `assist [-goal] [-explain] [<first question>]
  Start an interactive session with the AI assistant about a calculator.
  With -explain, print insights on the last computation and exit.

  The Gemini API key is read from $GEMINI_API_KEY.
`
}

// SetFlags sets the flags for the command.
func (c *AssistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.goal, "goal", false, "Discuss the goal planner instead of the SIP calculator.")
	f.BoolVar(&c.explain, "explain", false, "Print insights on the last computation and exit.")
}

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	if c.explain {
		insights, err := agent.Explain(ctx, client.Models, s.State())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		printMarkdown(insights)
		return subcommands.ExitSuccess
	}

	log := Logger()
	advisor := agent.NewAdvisor(log)
	a := agent.New(os.Stdout, os.Stdin, agent.NewPlanner(s, log, advisor), advisor)
	a.Print = writeMarkdown

	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
