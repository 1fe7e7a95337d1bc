package sip

import (
	"fmt"
	"strings"
)

// Timing tells when, within each month, the contribution is invested.
type Timing int

const (
	// EndOfPeriod invests at the end of each month: an ordinary annuity.
	EndOfPeriod Timing = iota
	// BeginningOfPeriod invests at the start of each month: an annuity due.
	// The invested amount earns one more month of return.
	BeginningOfPeriod
)

func (t Timing) String() string {
	switch t {
	case EndOfPeriod:
		return "end"
	case BeginningOfPeriod:
		return "beginning"
	default:
		return fmt.Sprintf("timing(%d)", int(t))
	}
}

func (t Timing) valid() bool { return t == EndOfPeriod || t == BeginningOfPeriod }

func ParseTiming(s string) (Timing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "end", "ordinary":
		return EndOfPeriod, nil
	case "beginning", "begin", "due":
		return BeginningOfPeriod, nil
	default:
		return EndOfPeriod, fmt.Errorf("unknown timing %q", s)
	}
}

func (t Timing) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("cannot marshal unknown timing %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Timing) UnmarshalText(text []byte) (err error) {
	*t, err = ParseTiming(string(text))
	return err
}
