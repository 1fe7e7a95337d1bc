package sip

import "github.com/shopspring/decimal"

// Domain bounds of a ContributionPlan.
const (
	MinYears = 1
	MaxYears = 30
)

var (
	MinRatePercent = decimal.NewFromInt(1)
	MaxRatePercent = decimal.NewFromInt(25)
)

// Field names reported in a ValidationError.
const (
	FieldMode              = "mode"
	FieldPeriodicAmount    = "periodicAmount"
	FieldTargetAmount      = "targetAmount"
	FieldYears             = "years"
	FieldAnnualRatePercent = "annualRatePercent"
	FieldTiming            = "timing"
)

// ContributionPlan holds the user's inputs.
//
// In SIP mode PeriodicAmount is the input and the maturity value is derived.
// In Goal mode TargetAmount is the input and PeriodicAmount is derived.
type ContributionPlan struct {
	Mode              Mode            `json:"mode"`
	PeriodicAmount    decimal.Decimal `json:"periodicAmount"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	Years             int             `json:"years"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	Timing            Timing          `json:"timing"`
	Name              string          `json:"name,omitempty"`
	Currency          string          `json:"currency,omitempty"`
}

// Months is the number of monthly contributions in the plan.
func (p ContributionPlan) Months() int { return p.Years * 12 }

// Input returns the user supplied amount for the plan's mode.
func (p ContributionPlan) Input() decimal.Decimal {
	if p.Mode == Goal {
		return p.TargetAmount
	}
	return p.PeriodicAmount
}

// Validate checks every field against its domain and returns a *ValidationError
// listing all the violations, or nil.
func (p ContributionPlan) Validate() error {
	e := new(ValidationError)
	if !p.Mode.valid() {
		e.add(FieldMode, "unknown mode %d", int(p.Mode))
	}
	if !p.Timing.valid() {
		e.add(FieldTiming, "unknown timing %d", int(p.Timing))
	}
	if p.Years < MinYears || p.Years > MaxYears {
		e.add(FieldYears, "must be between %d and %d, got %d", MinYears, MaxYears, p.Years)
	}
	if p.AnnualRatePercent.LessThan(MinRatePercent) || p.AnnualRatePercent.GreaterThan(MaxRatePercent) {
		e.add(FieldAnnualRatePercent, "must be between %s and %s, got %s", MinRatePercent, MaxRatePercent, p.AnnualRatePercent)
	}
	if p.PeriodicAmount.IsNegative() {
		e.add(FieldPeriodicAmount, "must not be negative, got %s", p.PeriodicAmount)
	}
	if p.TargetAmount.IsNegative() {
		e.add(FieldTargetAmount, "must not be negative, got %s", p.TargetAmount)
	}
	if len(e.Fields) > 0 {
		return e
	}
	return nil
}

// Equal reports whether p and q describe the same plan.
func (p ContributionPlan) Equal(q ContributionPlan) bool {
	return p.Mode == q.Mode &&
		p.PeriodicAmount.Equal(q.PeriodicAmount) &&
		p.TargetAmount.Equal(q.TargetAmount) &&
		p.Years == q.Years &&
		p.AnnualRatePercent.Equal(q.AnnualRatePercent) &&
		p.Timing == q.Timing &&
		p.Name == q.Name &&
		p.Currency == q.Currency
}
