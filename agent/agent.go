// Package agent implements the AI assistant commenting and editing a calculator with Gemini.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the interactive chat session with the planner.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Planner *Expert
	Experts []*Expert

	// Print writes the planner's markdown answers, plain text by default.
	Print func(w io.Writer, markdown string)
}

// New creates a new Agent reading the user's input from r and writing to w.
func New(w io.Writer, r io.Reader, planner *Expert, experts ...*Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Planner: planner,
		Experts: experts,
		Print:   func(w io.Writer, md string) { fmt.Fprintln(w, md) },
	}
}

// Start creates all the chats.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Planner.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive session, 'prompts' are sent before reading the user's input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Planner.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to sipc assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		content, err := a.Planner.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, text(content))
	}
}
