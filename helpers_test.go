package sip

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// mapStore is an in-memory Store for tests.
type mapStore map[string]string

func (m mapStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapStore) Set(key, value string) error {
	m[key] = value
	return nil
}

// brokenStore fails every operation.
type brokenStore struct{}

var errBroken = errors.New("storage unavailable")

func (brokenStore) Get(string) (string, bool, error) { return "", false, errBroken }
func (brokenStore) Set(string, string) error         { return errBroken }

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// closeTo reports whether a and b differ by less than a relative tolerance.
func closeTo(a, b decimal.Decimal, tolerance float64) bool {
	diff := a.Sub(b).Abs()
	scale := decimal.Max(a.Abs(), b.Abs())
	if scale.IsZero() {
		return true
	}
	return diff.Div(scale).LessThan(decimal.NewFromFloat(tolerance))
}

// assertClose fails if got and want differ by more than 'tolerance' relative error.
func assertClose(t *testing.T, name string, got, want decimal.Decimal, tolerance float64) {
	t.Helper()
	if !closeTo(got, want, tolerance) {
		t.Errorf("%s = %s, want %s (relative tolerance %g)", name, got, want, tolerance)
	}
}

func sipPlan(amount float64, years int, rate float64) ContributionPlan {
	return ContributionPlan{
		Mode:              SIP,
		PeriodicAmount:    D(amount),
		Years:             years,
		AnnualRatePercent: D(rate),
		Timing:            BeginningOfPeriod,
	}
}

func goalPlan(target float64, years int, rate float64) ContributionPlan {
	return ContributionPlan{
		Mode:              Goal,
		TargetAmount:      D(target),
		Years:             years,
		AnnualRatePercent: D(rate),
		Timing:            BeginningOfPeriod,
	}
}
