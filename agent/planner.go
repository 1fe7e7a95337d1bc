package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/sip"
	"github.com/etnz/sip/renderer"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Model is the Gemini model used by every expert.
const Model = "gemini-2.5-pro"

// NewPlanner returns the expert leading the conversation, it reads and updates the calculator in 'session'
// and consults 'experts' through function calls.
func NewPlanner(session *sip.Session, log *zap.Logger, experts ...*Expert) *Expert {
	tools := append(Tools(session), asFunctions(experts)...)
	return &Expert{
		Name:      "Planner",
		ModelName: Model,
		Log:       log,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: plannerInstruction}}},
		},
		Library: NewLibrary(tools),
	}
}

const plannerInstruction = `
You are a financial planner helping the user with a systematic investment plan (SIP) calculator.
Amounts are monthly contributions compounded monthly at the annual return divided by 12.

Use the tools to read the user's calculator, to compute alternative plans and to update the calculator
when the user asks for it. Never compute the figures yourself: always call a tool.
Ask the Advisor about market context or fund news when the user needs it.

Answer in short markdown, quote amounts as the tools format them.
`

// NewAdvisor returns an expert grounded on Google Search, for fund and market questions.
func NewAdvisor(log *zap.Logger) *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a mutual fund advisor, aware of fund performance, categories and recent market news.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: Model,
		Log:       log,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a mutual fund advisor. You leverage Google Search to ground your assertions,
			and you relate market news to the user's investment horizon and risk.`}}},
		},
	}
}

func asFunctions(experts []*Expert) []Function {
	fs := make([]Function, 0, len(experts))
	for _, e := range experts {
		fs = append(fs, e)
	}
	return fs
}

func numberSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: description}
}

var (
	monthlyAmountSchema = numberSchema("The monthly contribution.")
	targetAmountSchema  = numberSchema("The amount to reach at maturity.")
	yearsSchema         = &genai.Schema{Type: genai.TypeInteger, Description: fmt.Sprintf("The investment horizon in whole years, between %d and %d.", sip.MinYears, sip.MaxYears)}
	rateSchema          = numberSchema(fmt.Sprintf("The expected annual return in percent, between %s and %s.", sip.MinRatePercent, sip.MaxRatePercent))
	stringResponse      = &genai.Schema{Type: genai.TypeString, Description: "A markdown formatted answer."}
)

// Tools returns the calculator functions offered to the planner.
func Tools(session *sip.Session) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "current_projection",
				Description: "Returns the user's calculator: its inputs and, when computed, its results with the tax-adjusted corpus.",
				Response:    stringResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return renderer.RenderProjection(session.State(), renderer.ProjectionOptions{WithTax: true, SkipSeries: true}), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "calculate_sip",
				Description: "Computes the maturity value of a monthly contribution, without changing the user's calculator.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"monthlyAmount": monthlyAmountSchema,
						"years":         yearsSchema,
						"annualReturn":  rateSchema,
					},
					Required: []string{"monthlyAmount", "years", "annualReturn"},
				},
				Response: stringResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				plan, err := planArgs(session.State().Plan, sip.SIP, args)
				if err != nil {
					return "", err
				}
				return project(plan)
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "required_sip",
				Description: "Computes the monthly contribution needed to reach a target amount, without changing the user's calculator.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"targetAmount": targetAmountSchema,
						"years":        yearsSchema,
						"annualReturn": rateSchema,
					},
					Required: []string{"targetAmount", "years", "annualReturn"},
				},
				Response: stringResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				plan, err := planArgs(session.State().Plan, sip.Goal, args)
				if err != nil {
					return "", err
				}
				return project(plan)
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "list_funds",
				Description: "Lists the funds the user can plan against, with their 5 years CAGR, tax rate and risk level.",
				Response:    stringResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return renderer.RenderFunds(sip.Funds), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "update_calculator",
				Description: `Changes the user's calculator inputs and recomputes it. Only the given arguments change.
				Use it only when the user explicitly asks to change the calculator.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"monthlyAmount": monthlyAmountSchema,
						"targetAmount":  targetAmountSchema,
						"years":         yearsSchema,
						"annualReturn":  rateSchema,
					},
				},
				Response: stringResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				plan := session.State().Plan
				plan, err := planArgs(plan, plan.Mode, args)
				if err != nil {
					return "", err
				}
				if _, err := session.Recompute(plan); err != nil {
					return "", err
				}
				return renderer.RenderProjection(session.State(), renderer.ProjectionOptions{SkipSeries: true}), nil
			},
		},
	}
}

// planArgs applies the arguments present in args to 'base'.
func planArgs(base sip.ContributionPlan, mode sip.Mode, args map[string]any) (sip.ContributionPlan, error) {
	p := base
	p.Mode = mode
	var err error
	if _, ok := args["monthlyAmount"]; ok {
		if p.PeriodicAmount, err = numberArg(args, "monthlyAmount"); err != nil {
			return p, err
		}
	}
	if _, ok := args["targetAmount"]; ok {
		if p.TargetAmount, err = numberArg(args, "targetAmount"); err != nil {
			return p, err
		}
	}
	if _, ok := args["years"]; ok {
		if p.Years, err = yearsArg(args); err != nil {
			return p, err
		}
	}
	if _, ok := args["annualReturn"]; ok {
		if p.AnnualRatePercent, err = numberArg(args, "annualReturn"); err != nil {
			return p, err
		}
	}
	return p, nil
}

// project formats the result of a plan for the model.
func project(plan sip.ContributionPlan) (string, error) {
	plan, res, err := sip.Project(plan)
	if err != nil {
		return "", err
	}
	cur := plan.Currency
	var b strings.Builder
	if plan.Mode == sip.Goal {
		fmt.Fprintf(&b, "Required monthly SIP: %s\n", sip.M(plan.PeriodicAmount, cur).Whole())
	}
	fmt.Fprintf(&b, "Maturity value: %s\n", sip.M(res.MaturityValue, cur).Whole())
	fmt.Fprintf(&b, "Total invested: %s\n", sip.M(res.TotalContribution, cur).Whole())
	fmt.Fprintf(&b, "Wealth gained: %s\n", sip.M(res.WealthGained, cur).Whole())
	fmt.Fprintf(&b, "Total return: %s\n", sip.P(res.TotalReturnPercent))
	return b.String(), nil
}
