package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/sip"
	"github.com/etnz/sip/renderer"
)

// planFlags are the flags editing a plan. Only the flags set on the command line
// change the calculator's current plan.
type planFlags struct {
	file     string
	name     string
	amount   float64
	target   float64
	years    int
	rate     float64
	timing   string
	currency string
	fund     int

	granularity string
	tax         bool
	series      bool
}

func (p *planFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Plan file (.yaml, .yml, .hjson or .json) applied before the other flags.")
	f.StringVar(&p.name, "name", "", "Name of the plan.")
	f.Float64Var(&p.amount, "amount", 0, "Monthly contribution.")
	f.Float64Var(&p.target, "target", 0, "Target amount at maturity.")
	f.IntVar(&p.years, "years", 0, fmt.Sprintf("Investment horizon in whole years (%d to %d).", sip.MinYears, sip.MaxYears))
	f.Float64Var(&p.rate, "rate", 0, fmt.Sprintf("Expected annual return in percent (%s to %s).", sip.MinRatePercent, sip.MaxRatePercent))
	f.StringVar(&p.timing, "timing", "", "Contribution timing: 'beginning' (annuity due) or 'end' (ordinary annuity).")
	f.StringVar(&p.currency, "currency", "", "Currency code of the amounts, e.g. INR, EUR.")
	f.IntVar(&p.fund, "fund", 0, "Fund ID whose 5 years CAGR becomes the expected return unless -rate is set, see 'sipc funds'.")

	f.StringVar(&p.granularity, "granularity", "", "Series granularity: 'monthly' or 'yearly'.")
	f.BoolVar(&p.tax, "tax", false, "Show the tax-adjusted corpus.")
	f.BoolVar(&p.series, "series", true, "Show the projection series.")
}

// apply returns 'base' edited by the plan file and the flags set in f.
func (p *planFlags) apply(f *flag.FlagSet, base sip.ContributionPlan) (sip.ContributionPlan, error) {
	plan := base
	if p.file != "" {
		var err error
		if plan, err = sip.ReadPlanFile(p.file, plan); err != nil {
			return plan, err
		}
	}
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "name":
			plan.Name = p.name
		case "amount":
			plan.PeriodicAmount, err = sip.FromFloat(p.amount)
		case "target":
			plan.TargetAmount, err = sip.FromFloat(p.target)
		case "years":
			plan.Years = p.years
		case "rate":
			plan.AnnualRatePercent, err = sip.FromFloat(p.rate)
		case "timing":
			plan.Timing, err = sip.ParseTiming(p.timing)
		case "currency":
			plan.Currency = p.currency
		case "fund":
			var fund sip.Fund
			if fund, err = sip.LookupFund(p.fund); err == nil {
				plan = fund.Apply(plan)
			}
		}
	})
	return plan, err
}

// recompute applies the flags to the session's plan in 'mode', recomputes and renders it.
func (p *planFlags) recompute(f *flag.FlagSet, s *sip.Session, mode sip.Mode) (string, error) {
	plan, err := p.apply(f, s.State().Plan)
	if err != nil {
		return "", err
	}
	plan.Mode = mode
	if p.granularity != "" {
		g, err := sip.ParseGranularity(p.granularity)
		if err != nil {
			return "", err
		}
		s.SetGranularity(g)
	}
	if _, err := s.Recompute(plan); err != nil {
		return "", err
	}
	return renderer.RenderProjection(s.State(), p.options()), nil
}

func (p *planFlags) options() renderer.ProjectionOptions {
	opts := renderer.ProjectionOptions{WithTax: p.tax, SkipSeries: !p.series}
	if p.fund != 0 {
		if fund, err := sip.LookupFund(p.fund); err == nil {
			opts.TaxRatePercent = fund.TaxRatePercent
		}
	}
	return opts
}
