package sip

import "github.com/shopspring/decimal"

// DefaultTaxRatePercent applies when no fund is selected.
var DefaultTaxRatePercent = decimal.NewFromInt(20)

// TaxAdjusted is a corpus after tax.
type TaxAdjusted struct {
	AfterTaxCorpus decimal.Decimal `json:"afterTaxCorpus"`
	TaxPaid        decimal.Decimal `json:"taxPaid"`
}

// TaxAdjust applies a flat tax rate to 'corpus'.
func TaxAdjust(corpus, taxRatePercent decimal.Decimal) TaxAdjusted {
	tax := corpus.Mul(taxRatePercent).Div(hundred)
	return TaxAdjusted{AfterTaxCorpus: corpus.Sub(tax), TaxPaid: tax}
}

// Shortfall returns how much the after tax corpus misses 'target' by, zero if it does not.
func (t TaxAdjusted) Shortfall(target decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, target.Sub(t.AfterTaxCorpus))
}
