package api

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/sip"
	"github.com/shopspring/decimal"
)

// number is a JSON number that the dashboard sometimes sends as a string.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	*n = number(f)
	return nil
}

func (n *number) decimal() (decimal.Decimal, error) {
	if n == nil {
		return decimal.Zero, nil
	}
	return sip.FromFloat(float64(*n))
}

// planRequest is the body of the requests carrying a plan.
// Absent fields keep the value of the base plan.
type planRequest struct {
	Name           *string `json:"name"`
	Mode           *string `json:"mode"`
	MonthlyAmount  *number `json:"monthlyAmount"`
	TargetAmount   *number `json:"targetAmount"`
	Years          *number `json:"timePeriod"`
	DurationYears  *number `json:"durationYears"`
	ExpectedReturn *number `json:"expectedReturn"`
	AnnualReturn   *number `json:"expectedAnnualReturn"`
	Timing         *string `json:"timing"`
	Currency       *string `json:"currency"`
	Fund           *int    `json:"fund"`
}

// plan applies the request to 'base'.
func (r planRequest) plan(base sip.ContributionPlan) (sip.ContributionPlan, error) {
	p := base
	var err error
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Currency != nil {
		p.Currency = *r.Currency
	}
	if r.Mode != nil {
		if p.Mode, err = sip.ParseMode(*r.Mode); err != nil {
			return p, fmt.Errorf("%w: %v", sip.ErrInvalidInput, err)
		}
	}
	if r.Timing != nil {
		if p.Timing, err = sip.ParseTiming(*r.Timing); err != nil {
			return p, fmt.Errorf("%w: %v", sip.ErrInvalidInput, err)
		}
	}
	if r.Fund != nil {
		fund, err := sip.LookupFund(*r.Fund)
		if err != nil {
			return p, fmt.Errorf("%w: %v", sip.ErrInvalidInput, err)
		}
		p = fund.Apply(p)
	}
	years := r.Years
	if r.DurationYears != nil {
		years = r.DurationYears
	}
	if years != nil {
		if float64(*years) != float64(int(*years)) {
			return p, fmt.Errorf("%w: years must be a whole number, got %v", sip.ErrInvalidInput, float64(*years))
		}
		p.Years = int(*years)
	}
	rate := r.ExpectedReturn
	if r.AnnualReturn != nil {
		rate = r.AnnualReturn
	}
	if rate != nil {
		if p.AnnualRatePercent, err = rate.decimal(); err != nil {
			return p, err
		}
	}
	if r.MonthlyAmount != nil {
		if p.PeriodicAmount, err = r.MonthlyAmount.decimal(); err != nil {
			return p, err
		}
	}
	if r.TargetAmount != nil {
		if p.TargetAmount, err = r.TargetAmount.decimal(); err != nil {
			return p, err
		}
	}
	return p, nil
}
