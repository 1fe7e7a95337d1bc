package agent

import (
	"context"
	"fmt"

	"github.com/etnz/sip"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// Library dispatches a model's function call to the function it names.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is a tool the model can call.
type Function interface {
	// Declaration describes the function to the model.
	Declaration() *genai.FunctionDeclaration
	// Call runs the function.
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary returns the Library calling 'functions' by name.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, f := range functions {
			if f.Declaration().Name == call.Name {
				return f.Call(ctx, call.ID, call.Args)
			}
		}
		return errorResponse(call.ID, call.Name, fmt.Errorf("unknown function %s", call.Name))
	}
}

// NewDeclaration returns the declarations of 'functions', in order.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		result = append(result, f.Declaration())
	}
	return result
}

// Func implements a Function from a declaration and a Go function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return errorResponse(id, f.Decl.Name, err)
	}
	return &genai.FunctionResponse{ID: id, Name: f.Decl.Name, Response: map[string]any{"output": out}}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

// numberArg reads a numeric argument, models send numbers as float64 and sometimes as strings.
func numberArg(args map[string]any, name string) (decimal.Decimal, error) {
	v, ok := args[name]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: missing argument %q", sip.ErrInvalidInput, name)
	}
	switch x := v.(type) {
	case float64:
		return sip.FromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: argument %q: %v", sip.ErrInvalidInput, name, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: argument %q is a %T, expected a number", sip.ErrInvalidInput, name, v)
	}
}

// yearsArg reads a whole number of years.
func yearsArg(args map[string]any) (int, error) {
	d, err := numberArg(args, "years")
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: years must be a whole number, got %s", sip.ErrInvalidInput, d)
	}
	return int(d.IntPart()), nil
}
