package renderer

import (
	"github.com/etnz/sip"
	"github.com/shopspring/decimal"
)

// Projection is a struct to represent a calculator state for rendering.
// Numbers are handled using the display types (Money, Percent)
// So that they already contain basics renderers (String, Whole etc.)
type Projection struct {
	// Title of the report, the plan name if any.
	Title string `json:"title"`
	// Goal is true when the periodic amount was derived from a target.
	Goal           bool        `json:"goal"`
	PeriodicAmount sip.Money   `json:"periodicAmount"`
	TargetAmount   sip.Money   `json:"targetAmount"`
	Years          int         `json:"years"`
	AnnualRate     sip.Percent `json:"annualRate"`
	Timing         string      `json:"timing"`
	// Visible is false until the calculator was computed once.
	Visible           bool        `json:"visible"`
	MaturityValue     sip.Money   `json:"maturityValue"`
	TotalContribution sip.Money   `json:"totalContribution"`
	WealthGained      sip.Money   `json:"wealthGained"`
	TotalReturn       sip.Percent `json:"totalReturn"`
	// Tax is nil unless requested.
	Tax *ProjectionTax `json:"tax,omitempty"`
	// Period is the name of a series period ("year" or "month").
	Period string          `json:"period"`
	Rows   []ProjectionRow `json:"rows"`
}

// ProjectionTax represents the tax adjusted corpus.
type ProjectionTax struct {
	Rate           sip.Percent `json:"rate"`
	AfterTaxCorpus sip.Money   `json:"afterTaxCorpus"`
	TaxPaid        sip.Money   `json:"taxPaid"`
	Shortfall      sip.Money   `json:"shortfall"`
}

// ProjectionRow represents one point of the series.
type ProjectionRow struct {
	Period       int       `json:"period"`
	Contribution sip.Money `json:"contribution"`
	Value        sip.Money `json:"value"`
	Gain         sip.Money `json:"gain"`
}

// ProjectionOptions holds configuration for rendering a projection.
type ProjectionOptions struct {
	WithTax        bool            // Render the tax adjusted corpus.
	TaxRatePercent decimal.Decimal // Tax rate, sip.DefaultTaxRatePercent if zero.
	SkipSeries     bool            // Do not render the series table.
}

// NewProjection creates a Projection from a calculator state.
func NewProjection(s sip.CalculatorState, opts ProjectionOptions) *Projection {
	plan, res := s.Plan, s.Result
	cur := plan.Currency
	p := &Projection{
		Title:             plan.Name,
		Goal:              plan.Mode == sip.Goal,
		PeriodicAmount:    sip.M(plan.PeriodicAmount, cur),
		TargetAmount:      sip.M(plan.TargetAmount, cur),
		Years:             plan.Years,
		AnnualRate:        sip.P(plan.AnnualRatePercent),
		Timing:            timingLabel(plan.Timing),
		Visible:           s.ResultsVisible,
		MaturityValue:     sip.M(res.MaturityValue, cur),
		TotalContribution: sip.M(res.TotalContribution, cur),
		WealthGained:      sip.M(res.WealthGained, cur),
		TotalReturn:       sip.P(res.TotalReturnPercent),
		Period:            s.Series.Granularity.Name(),
		Rows:              make([]ProjectionRow, 0, s.Series.Len()),
	}
	if p.Title == "" {
		p.Title = "SIP Projection"
		if p.Goal {
			p.Title = "Goal Plan"
		}
	}
	if opts.WithTax && s.ResultsVisible {
		rate := opts.TaxRatePercent
		if rate.IsZero() {
			rate = sip.DefaultTaxRatePercent
		}
		t := sip.TaxAdjust(res.MaturityValue, rate)
		p.Tax = &ProjectionTax{
			Rate:           sip.P(rate),
			AfterTaxCorpus: sip.M(t.AfterTaxCorpus, cur),
			TaxPaid:        sip.M(t.TaxPaid, cur),
			Shortfall:      sip.M(t.Shortfall(plan.TargetAmount), cur),
		}
	}
	if !opts.SkipSeries {
		for _, pt := range s.Series.Points {
			p.Rows = append(p.Rows, ProjectionRow{
				Period:       pt.Period,
				Contribution: sip.M(pt.CumulativeContribution, cur),
				Value:        sip.M(pt.ProjectedValue, cur),
				Gain:         sip.M(pt.ProjectedValue.Sub(pt.CumulativeContribution), cur),
			})
		}
	}
	return p
}

func timingLabel(t sip.Timing) string {
	if t == sip.BeginningOfPeriod {
		return "beginning of month"
	}
	return "end of month"
}
