package sip

import (
	"iter"

	"github.com/shopspring/decimal"
)

// ProjectionPoint is one entry of a projection series.
// Period counts months or years depending on the series granularity, 0 being the baseline before any investment.
type ProjectionPoint struct {
	Period                 int             `json:"period"`
	CumulativeContribution decimal.Decimal `json:"cumulativeContribution"`
	ProjectedValue         decimal.Decimal `json:"projectedValue"`
}

// ProjectionSeries is an ordered sequence of points at a given granularity.
type ProjectionSeries struct {
	Granularity Granularity       `json:"granularity"`
	Points      []ProjectionPoint `json:"points"`
}

// Last returns the last point of the series, the zero point if empty.
func (s ProjectionSeries) Last() ProjectionPoint {
	if len(s.Points) == 0 {
		return ProjectionPoint{}
	}
	return s.Points[len(s.Points)-1]
}

// Len returns the number of points.
func (s ProjectionSeries) Len() int { return len(s.Points) }

// Points returns the projection of 'plan' sampled at 'g'.
//
// Accumulation is always monthly, whatever the granularity, so that a yearly
// series is exactly a sub-sampling of the monthly one. The sequence can be
// iterated several times.
func Points(plan ContributionPlan, g Granularity) iter.Seq[ProjectionPoint] {
	return func(yield func(ProjectionPoint) bool) {
		r := MonthlyRate(plan.AnnualRatePercent)
		growth := one.Add(r)
		amount := plan.PeriodicAmount
		contributed, value := decimal.Zero, decimal.Zero

		for m := 0; m <= plan.Months(); m++ {
			if m > 0 {
				contributed = contributed.Add(amount)
				if plan.Timing == BeginningOfPeriod {
					value = value.Add(amount).Mul(growth)
				} else {
					value = value.Mul(growth).Add(amount)
				}
				// precision cap on the running product, far below currency rounding
				value = value.Round(powPrecision)
			}
			if g == Monthly {
				if !yield(ProjectionPoint{Period: m, CumulativeContribution: contributed, ProjectedValue: value}) {
					return
				}
			} else if m%12 == 0 {
				if !yield(ProjectionPoint{Period: m / 12, CumulativeContribution: contributed, ProjectedValue: value}) {
					return
				}
			}
		}
	}
}

// BuildSeries collects the projection of 'plan' at granularity 'g'.
func BuildSeries(plan ContributionPlan, g Granularity) ProjectionSeries {
	size := plan.Years + 1
	if g == Monthly {
		size = plan.Months() + 1
	}
	s := ProjectionSeries{Granularity: g, Points: make([]ProjectionPoint, 0, max(size, 1))}
	for p := range Points(plan, g) {
		s.Points = append(s.Points, p)
	}
	return s
}
