package sip

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MonthlyRate converts an annual rate in percent into the monthly compounding rate.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// FutureValue returns the maturity value of 'amount' invested at the end of each month for 'years',
// growing at 'annualRatePercent' compounded monthly.
func FutureValue(amount, annualRatePercent decimal.Decimal, years int) (decimal.Decimal, error) {
	return EndOfPeriod.FutureValue(amount, annualRatePercent, years)
}

// RequiredContribution returns the amount to invest at the end of each month to reach 'target' after 'years'.
// It is the inverse of FutureValue.
func RequiredContribution(target, annualRatePercent decimal.Decimal, years int) (decimal.Decimal, error) {
	return EndOfPeriod.RequiredContribution(target, annualRatePercent, years)
}

// FutureValue returns the maturity value of 'amount' invested every month, at t, for 'years'.
//
// With r the monthly rate and n the number of months it is amount*((1+r)^n-1)/r,
// times (1+r) when investing at the beginning of the month, and amount*n when r is zero.
func (t Timing) FutureValue(amount, annualRatePercent decimal.Decimal, years int) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative amount %s", ErrInvalidInput, amount)
	}
	if err := checkRateAndYears(annualRatePercent, years); err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(t.factor(MonthlyRate(annualRatePercent), years*12)), nil
}

// RequiredContribution returns the amount to invest every month, at t, to reach 'target' after 'years'.
func (t Timing) RequiredContribution(target, annualRatePercent decimal.Decimal, years int) (decimal.Decimal, error) {
	if target.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative target %s", ErrInvalidInput, target)
	}
	if err := checkRateAndYears(annualRatePercent, years); err != nil {
		return decimal.Zero, err
	}
	if years == 0 {
		return decimal.Zero, fmt.Errorf("%w: cannot reach a target in zero years", ErrInvalidInput)
	}
	return target.Div(t.factor(MonthlyRate(annualRatePercent), years*12)), nil
}

// factor is the future value of one unit invested for n months at monthly rate r.
func (t Timing) factor(r decimal.Decimal, n int) decimal.Decimal {
	if r.IsZero() {
		return decimal.NewFromInt(int64(n))
	}
	growth := one.Add(r)
	f := powInt(growth, n).Sub(one).Div(r)
	if t == BeginningOfPeriod {
		f = f.Mul(growth)
	}
	return f
}

func checkRateAndYears(annualRatePercent decimal.Decimal, years int) error {
	if annualRatePercent.IsNegative() {
		return fmt.Errorf("%w: negative rate %s", ErrInvalidInput, annualRatePercent)
	}
	if years < 0 {
		return fmt.Errorf("%w: negative horizon %d years", ErrInvalidInput, years)
	}
	return nil
}
