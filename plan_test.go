package sip

import (
	"errors"
	"testing"
)

func TestContributionPlan_Validate(t *testing.T) {
	tests := []struct {
		name       string
		plan       ContributionPlan
		wantFields []string
	}{
		{"default", DefaultState().Plan, nil},
		{"goal default", DefaultGoalState().Plan, nil},
		{"zero years", sipPlan(5000, 0, 12), []string{FieldYears}},
		{"31 years", sipPlan(5000, 31, 12), []string{FieldYears}},
		{"rate 26", sipPlan(5000, 10, 26), []string{FieldAnnualRatePercent}},
		{"rate below 1", sipPlan(5000, 10, 0.5), []string{FieldAnnualRatePercent}},
		{"negative amount", sipPlan(-1, 10, 12), []string{FieldPeriodicAmount}},
		{"negative target", goalPlan(-1, 10, 12), []string{FieldTargetAmount}},
		{"everything wrong", ContributionPlan{Mode: Mode(7), Timing: Timing(9), PeriodicAmount: D(-5), TargetAmount: D(-5), Years: 40, AnnualRatePercent: D(30)},
			[]string{FieldMode, FieldTiming, FieldYears, FieldAnnualRatePercent, FieldPeriodicAmount, FieldTargetAmount}},
		{"bounds are inclusive", sipPlan(0, 30, 25), nil},
		{"lower bounds are inclusive", sipPlan(0, 1, 1), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.plan.Validate()
			if len(tc.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if len(verr.Fields) != len(tc.wantFields) {
				t.Errorf("Validate() reported %v, want fields %v", verr.Fields, tc.wantFields)
			}
			for _, f := range tc.wantFields {
				if !verr.Has(f) {
					t.Errorf("Validate() did not report %q: %v", f, verr)
				}
			}
		})
	}
}
