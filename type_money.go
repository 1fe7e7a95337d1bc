package sip

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of plans that do not name one.
const DefaultCurrency = "INR"

// Money represents a monetary value for display.
// Computations are done on plain decimals, Money only exists at the formatting boundary.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{value: D(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, rounded to the currency's fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Whole returns the string representation of the money value rounded to the major unit.
func (m Money) Whole() string {
	cur := m.currency()
	f := cur.Formatter()
	f.Fraction = 0
	return f.Format(m.value.Round(0).IntPart())
}

func (m Money) Currency() string        { return m.cur }
func (m Money) Value() decimal.Decimal  { return m.value }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool   { return m.value.LessThan(n.value) }
