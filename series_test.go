package sip

import (
	"testing"
)

func TestBuildSeries_Length(t *testing.T) {
	tests := []struct {
		name  string
		years int
		g     Granularity
		want  int
	}{
		{"yearly 10y", 10, Yearly, 11},
		{"monthly 10y", 10, Monthly, 121},
		{"yearly 30y", 30, Yearly, 31},
		{"monthly 1y", 1, Monthly, 13},
		{"yearly 0y", 0, Yearly, 1},
		{"monthly 0y", 0, Monthly, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := BuildSeries(sipPlan(5000, tc.years, 12), tc.g)
			if s.Len() != tc.want {
				t.Errorf("BuildSeries() has %d points, want %d", s.Len(), tc.want)
			}
			if s.Granularity != tc.g {
				t.Errorf("BuildSeries() granularity = %v, want %v", s.Granularity, tc.g)
			}
			first := s.Points[0]
			if first.Period != 0 || !first.CumulativeContribution.IsZero() || !first.ProjectedValue.IsZero() {
				t.Errorf("baseline point = %+v, want all zero", first)
			}
			for i, p := range s.Points {
				if p.Period != i {
					t.Fatalf("point %d has period %d", i, p.Period)
				}
			}
		})
	}
}

// The last point of a series and the scalar future value never disagree.
func TestBuildSeries_AgreesWithFutureValue(t *testing.T) {
	for _, timing := range []Timing{EndOfPeriod, BeginningOfPeriod} {
		for _, rate := range []float64{1, 6.5, 12, 25} {
			for _, years := range []int{1, 10, 30} {
				plan := sipPlan(3000, years, rate)
				plan.Timing = timing
				want, err := timing.FutureValue(plan.PeriodicAmount, plan.AnnualRatePercent, years)
				if err != nil {
					t.Fatal(err)
				}
				for _, g := range []Granularity{Monthly, Yearly} {
					last := BuildSeries(plan, g).Last()
					assertClose(t, "last projected value", last.ProjectedValue, want, 1e-9)
					if wantTotal := D(3000 * 12 * years); !last.CumulativeContribution.Equal(wantTotal) {
						t.Errorf("last cumulative contribution = %s, want %s", last.CumulativeContribution, wantTotal)
					}
				}
			}
		}
	}
}

func TestBuildSeries_YearlyIsSubsampleOfMonthly(t *testing.T) {
	plan := sipPlan(5000, 5, 12)
	monthly := BuildSeries(plan, Monthly)
	yearly := BuildSeries(plan, Yearly)
	for _, p := range yearly.Points {
		m := monthly.Points[p.Period*12]
		if !m.ProjectedValue.Equal(p.ProjectedValue) || !m.CumulativeContribution.Equal(p.CumulativeContribution) {
			t.Errorf("year %d = %+v, month %d = %+v", p.Period, p, p.Period*12, m)
		}
	}
}

func TestBuildSeries_FirstMonth(t *testing.T) {
	// End of period: the first contribution has not grown yet.
	plan := sipPlan(5000, 1, 12)
	plan.Timing = EndOfPeriod
	if got := BuildSeries(plan, Monthly).Points[1].ProjectedValue; !got.Equal(D(5000)) {
		t.Errorf("end of period month 1 = %s, want 5000", got)
	}
	// Beginning of period: it earned one month at 1%.
	plan.Timing = BeginningOfPeriod
	if got := BuildSeries(plan, Monthly).Points[1].ProjectedValue; !got.Equal(D(5050)) {
		t.Errorf("beginning of period month 1 = %s, want 5050", got)
	}
}

func TestPoints_EarlyStopAndRestart(t *testing.T) {
	seq := Points(sipPlan(1000, 3, 10), Monthly)
	n := 0
	for range seq {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("iterated %d points before break, want 5", n)
	}
	total := 0
	for range seq {
		total++
	}
	if total != 37 {
		t.Errorf("restarted sequence has %d points, want 37", total)
	}
}
