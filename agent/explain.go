package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/sip"
	"github.com/etnz/sip/renderer"
	"google.golang.org/genai"
)

// Generator generates content from a model, *genai.Models implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Prompt returns the prompt asking for insights on the calculator in state.
func Prompt(state sip.CalculatorState) string {
	var b strings.Builder
	b.WriteString("Here is my investment plan as computed by my SIP calculator.\n\n")
	b.WriteString(renderer.RenderProjection(state, renderer.ProjectionOptions{WithTax: true}))
	b.WriteString(`

Give me three short insights about this plan: whether the horizon and the expected return are realistic,
how sensitive the result is to a lower return, and one concrete action to improve it.
Answer in markdown, in less than 200 words.
`)
	return b.String()
}

// Explain asks the model for insights on a computed calculator.
func Explain(ctx context.Context, g Generator, state sip.CalculatorState) (string, error) {
	if !state.ResultsVisible {
		return "", fmt.Errorf("%w: nothing to explain, the calculator has not been computed", sip.ErrInvalidInput)
	}
	resp, err := g.GenerateContent(ctx, Model, genai.Text(Prompt(state)), nil)
	if err != nil {
		return "", fmt.Errorf("cannot generate insights: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no insights generated")
	}
	return text(resp.Candidates[0].Content), nil
}
