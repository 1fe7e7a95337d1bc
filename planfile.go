package sip

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hjson/hjson-go/v4"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// this file reads plans written by hand, in YAML, HJSON or JSON.
//
//	name: house
//	mode: goal
//	targetAmount: 2500000
//	years: 12
//	expectedReturn: 11.5

// jplan is the object read from a plan file, using plain types the three formats agree on.
// Numbers are pointers so that an explicit 0 is told apart from an absent field.
type jplan struct {
	Name           string   `json:"name" yaml:"name"`
	Mode           string   `json:"mode" yaml:"mode"`
	MonthlyAmount  *float64 `json:"monthlyAmount" yaml:"monthlyAmount"`
	TargetAmount   *float64 `json:"targetAmount" yaml:"targetAmount"`
	Years          *int     `json:"years" yaml:"years"`
	ExpectedReturn *float64 `json:"expectedReturn" yaml:"expectedReturn"`
	Timing         string   `json:"timing" yaml:"timing"`
	Currency       string   `json:"currency" yaml:"currency"`
	Fund           int      `json:"fund" yaml:"fund"`
}

// DecodePlan reads a plan in 'format' ("yaml", "hjson" or "json").
// Fields missing from the file keep the value they have in 'base'.
func DecodePlan(r io.Reader, format string, base ContributionPlan) (ContributionPlan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return base, err
	}
	var jp jplan
	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &jp)
	case "hjson":
		err = hjson.Unmarshal(data, &jp)
	case "json":
		err = json.Unmarshal(data, &jp)
	default:
		return base, fmt.Errorf("unsupported plan format %q", format)
	}
	if err != nil {
		return base, fmt.Errorf("format error: %w", err)
	}
	return jp.apply(base)
}

// ReadPlanFile reads a plan file, the format is deduced from its extension.
func ReadPlanFile(name string, base ContributionPlan) (ContributionPlan, error) {
	f, err := os.Open(name)
	if err != nil {
		return base, err
	}
	defer f.Close()
	format := strings.TrimPrefix(filepath.Ext(name), ".")
	plan, err := DecodePlan(f, format, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", name, err)
	}
	return plan, nil
}

func (jp jplan) apply(p ContributionPlan) (ContributionPlan, error) {
	var err error
	if jp.Name != "" {
		p.Name = jp.Name
	}
	if jp.Mode != "" {
		if p.Mode, err = ParseMode(jp.Mode); err != nil {
			return p, err
		}
	}
	if jp.Timing != "" {
		if p.Timing, err = ParseTiming(jp.Timing); err != nil {
			return p, err
		}
	}
	if jp.Currency != "" {
		p.Currency = strings.ToUpper(jp.Currency)
	}
	if jp.Years != nil {
		p.Years = *jp.Years
	}
	if jp.Fund != 0 {
		fund, err := LookupFund(jp.Fund)
		if err != nil {
			return p, err
		}
		p = fund.Apply(p)
	}
	if err := setDecimal(&p.AnnualRatePercent, "expectedReturn", jp.ExpectedReturn); err != nil {
		return p, err
	}
	if err := setDecimal(&p.PeriodicAmount, "monthlyAmount", jp.MonthlyAmount); err != nil {
		return p, err
	}
	if err := setDecimal(&p.TargetAmount, "targetAmount", jp.TargetAmount); err != nil {
		return p, err
	}
	return p, nil
}

// setDecimal stores 'f' into 'dst' when the field was present in the file.
func setDecimal(dst *decimal.Decimal, field string, f *float64) error {
	if f == nil {
		return nil
	}
	d, err := FromFloat(*f)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = d
	return nil
}
