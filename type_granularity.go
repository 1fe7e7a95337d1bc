package sip

import (
	"fmt"
	"strings"
)

// Granularity is the time resolution at which a projection series is sampled.
type Granularity int

const (
	Monthly Granularity = iota
	Yearly
)

func (g Granularity) String() string {
	switch g {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// Name returns the singular noun for the granularity (e.g., "month", "year").
func (g Granularity) Name() string {
	switch g {
	case Monthly:
		return "month"
	default:
		return "year"
	}
}

func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Yearly, fmt.Errorf("unknown granularity %q", s)
	}
}

func (g Granularity) MarshalText() ([]byte, error) {
	if g != Monthly && g != Yearly {
		return nil, fmt.Errorf("cannot marshal unknown granularity %d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *Granularity) UnmarshalText(text []byte) (err error) {
	*g, err = ParseGranularity(string(text))
	return err
}
