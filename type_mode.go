package sip

import (
	"fmt"
	"strings"
)

// Mode selects which variable of a ContributionPlan is solved for.
type Mode int

const (
	// SIP solves for the maturity value of a given periodic amount.
	SIP Mode = iota
	// Goal solves for the periodic amount required to reach a target amount.
	Goal
)

func (m Mode) String() string {
	switch m {
	case SIP:
		return "sip"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m Mode) valid() bool { return m == SIP || m == Goal }

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sip":
		return SIP, nil
	case "goal":
		return Goal, nil
	default:
		return SIP, fmt.Errorf("unknown mode %q", s)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("cannot marshal unknown mode %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) (err error) {
	*m, err = ParseMode(string(text))
	return err
}
