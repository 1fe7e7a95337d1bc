package sip

import "github.com/shopspring/decimal"

// ProjectionResult holds the scalar outputs of a projection.
//
// MaturityValue == TotalContribution + WealthGained holds exactly.
type ProjectionResult struct {
	MaturityValue      decimal.Decimal `json:"maturityValue"`
	TotalContribution  decimal.Decimal `json:"totalContribution"`
	WealthGained       decimal.Decimal `json:"wealthGained"`
	TotalReturnPercent decimal.Decimal `json:"totalReturnPercent"`
}

// DeriveResult computes the wealth gained and total return from the contribution and maturity value.
// The total return is 0 when nothing was contributed.
func DeriveResult(totalContribution, maturityValue decimal.Decimal) ProjectionResult {
	gained := maturityValue.Sub(totalContribution)
	ret := decimal.Zero
	if !totalContribution.IsZero() {
		ret = gained.Div(totalContribution).Mul(hundred)
	}
	return ProjectionResult{
		MaturityValue:      maturityValue,
		TotalContribution:  totalContribution,
		WealthGained:       gained,
		TotalReturnPercent: ret,
	}
}

func (r ProjectionResult) Equal(s ProjectionResult) bool {
	return r.MaturityValue.Equal(s.MaturityValue) &&
		r.TotalContribution.Equal(s.TotalContribution) &&
		r.WealthGained.Equal(s.WealthGained) &&
		r.TotalReturnPercent.Equal(s.TotalReturnPercent)
}

// Project computes the result of a valid plan, and in Goal mode returns the plan
// with the derived periodic amount.
func Project(plan ContributionPlan) (ContributionPlan, ProjectionResult, error) {
	if err := plan.Validate(); err != nil {
		return plan, ProjectionResult{}, err
	}
	months := decimal.NewFromInt(int64(plan.Months()))
	switch plan.Mode {
	case Goal:
		amount, err := plan.Timing.RequiredContribution(plan.TargetAmount, plan.AnnualRatePercent, plan.Years)
		if err != nil {
			return plan, ProjectionResult{}, err
		}
		plan.PeriodicAmount = amount
		return plan, DeriveResult(amount.Mul(months), plan.TargetAmount), nil
	default:
		maturity, err := plan.Timing.FutureValue(plan.PeriodicAmount, plan.AnnualRatePercent, plan.Years)
		if err != nil {
			return plan, ProjectionResult{}, err
		}
		return plan, DeriveResult(plan.PeriodicAmount.Mul(months), maturity), nil
	}
}
