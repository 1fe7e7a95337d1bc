package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/etnz/sip"
	"github.com/etnz/sip/renderer"
	"github.com/google/subcommands"
)

type reportTask struct {
	Plan   sip.SavedPlan
	Report string
}

type publishCmd struct {
	outputDir      string
	frontMatterTpl string
	granularity    string
	tax            bool
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates a report for every saved plan" }

func (*publishCmd) Usage() string {
	return `publish [-o <dir>] [-frontmatter <file>] [-granularity monthly|yearly] [-tax]

  Generates the projection report of every saved plan, and an index of the
  saved plans, in a directory tree:

    <dir>/plans.md
    <dir>/<status>/<plan id>.md
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
	f.StringVar(&c.granularity, "granularity", "yearly", "Series granularity of the reports: 'monthly' or 'yearly'.")
	f.BoolVar(&c.tax, "tax", true, "Include the tax-adjusted corpus.")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	g, err := sip.ParseGranularity(c.granularity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenPlanBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open the saved plans: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	plans := book.List()
	if len(plans) == 0 {
		fmt.Println("No saved plans, nothing to publish.")
		return subcommands.ExitSuccess
	}
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(filepath.Join(c.outputDir, "plans.md"), []byte(renderer.RenderPlans(book, sip.DefaultCurrency)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write the plans index: %v\n", err)
		return subcommands.ExitFailure
	}

	log := Logger().Sugar()
	for _, plan := range plans {
		task := reportTask{Plan: plan, Report: "projection"}
		md := renderer.RenderProjection(plan.State(g), renderer.ProjectionOptions{WithTax: c.tax})

		if frontMatterTpl != nil {
			fm, err := renderFrontMatter(frontMatterTpl, task)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to render front matter for plan %s: %v\n", plan.ID, err)
				continue
			}
			md = fm + "\n" + md
		}

		filePath := filepath.Join(plan.Status.String(), plan.ID+".md")
		fullPath := filepath.Join(c.outputDir, filePath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output directory for file %s: %v\n", filePath, err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(fullPath, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", filePath, err)
			return subcommands.ExitFailure
		}
		log.Infow("generated report", "plan", plan.Name, "file", filePath)
	}
	fmt.Printf("Published %d plans in %s\n", len(plans), c.outputDir)
	return subcommands.ExitSuccess
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}
