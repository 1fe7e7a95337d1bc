package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/sip"
)

//go:embed *.md
var templates embed.FS

// RenderProjection renders a calculator state to a markdown string.
func RenderProjection(s sip.CalculatorState, opts ProjectionOptions) string {
	partials := map[string]string{
		"projection_title":  "projection_title.md",
		"projection_inputs": "projection_inputs.md",
		"projection_result": "projection_result.md",
		"projection_tax":    "projection_tax.md",
	}
	// An empty file name results in an empty template.
	if !opts.SkipSeries {
		partials["projection_series"] = "projection_series.md"
	} else {
		partials["projection_series"] = ""
	}
	return renderTemplate("projection", "projection.md", partials, NewProjection(s, opts))
}

// RenderPlans renders the saved plans to a markdown string.
func RenderPlans(b *sip.PlanBook, currency string) string {
	return renderTemplate("plans", "plans.md", nil, NewPlans(b.List(), b.Summary(), currency))
}

// RenderFunds renders the fund catalog to a markdown string.
func RenderFunds(funds []sip.Fund) string {
	return renderTemplate("funds", "funds.md", nil, funds)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
