package sip

import (
	"strings"
	"testing"
)

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		in      string
		want    Granularity
		wantErr bool
	}{
		{"monthly", Monthly, false},
		{"Month", Monthly, false},
		{"yearly", Yearly, false},
		{" year ", Yearly, false},
		{"weekly", Yearly, true},
	}
	for _, tc := range tests {
		got, err := ParseGranularity(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseGranularity(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestParseTiming(t *testing.T) {
	for in, want := range map[string]Timing{"end": EndOfPeriod, "due": BeginningOfPeriod, "Beginning": BeginningOfPeriod} {
		got, err := ParseTiming(in)
		if err != nil || got != want {
			t.Errorf("ParseTiming(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTiming("middle"); err == nil {
		t.Error("ParseTiming(middle) succeeded")
	}
}

func TestModeMarshalText(t *testing.T) {
	for _, m := range []Mode{SIP, Goal} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Mode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("UnmarshalText(%s) = %v, %v", text, back, err)
		}
	}
	if _, err := Mode(5).MarshalText(); err == nil {
		t.Error("MarshalText() of an unknown mode succeeded")
	}
}

func TestMoney_String(t *testing.T) {
	m := M(D(1161695.3817), "INR")
	if s := m.String(); !strings.Contains(s, "1,161,695.38") {
		t.Errorf("String() = %q, want it to contain 1,161,695.38", s)
	}
	if s := m.Whole(); !strings.Contains(s, "1,161,695") || strings.Contains(s, ".") {
		t.Errorf("Whole() = %q, want 1,161,695 without fraction", s)
	}
	if cur := M(10, "").Currency(); cur != DefaultCurrency {
		t.Errorf("Currency() = %q, want %q", cur, DefaultCurrency)
	}
}

func TestPercent_String(t *testing.T) {
	if s := Percent(93.6158).String(); s != "93.62%" {
		t.Errorf("String() = %q", s)
	}
	if s := Percent(0).SignedString(); s != "-" {
		t.Errorf("SignedString() = %q", s)
	}
}
