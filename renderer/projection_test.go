package renderer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/etnz/sip"
)

func computed(t *testing.T, plan sip.ContributionPlan) sip.CalculatorState {
	t.Helper()
	s := sip.NewSession(sip.Store(nopStore{}), "test")
	if _, err := s.Recompute(plan); err != nil {
		t.Fatal(err)
	}
	return s.State()
}

type nopStore struct{}

func (nopStore) Get(string) (string, bool, error) { return "", false, nil }
func (nopStore) Set(string, string) error         { return nil }

func TestRenderProjection(t *testing.T) {
	state := computed(t, sip.DefaultState().Plan)
	got := RenderProjection(state, ProjectionOptions{WithTax: true})

	for _, want := range []string{
		"# SIP Projection",
		"| Monthly Investment | ₹5,000 |",
		"| Investment Period | 10 years |",
		"| Expected Return | 12.00% |",
		"| Total Investment | ₹600,000 |",
		"| Maturity Value | ₹1,161,695 |",
		"| Wealth Gained | ₹561,695 |",
		"| Total Return | 93.62% |",
		"## After Tax (20.00%)",
		"| After Tax Corpus | ₹929,356 |",
		"## Growth",
		"| 10 | ₹600,000 | ₹1,161,695 | ₹561,695 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderProjection() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("RenderProjection() failed:\n%s", got)
	}
}

func TestRenderProjection_Goal(t *testing.T) {
	plan := sip.DefaultGoalState().Plan
	plan.Name = "House"
	got := RenderProjection(computed(t, plan), ProjectionOptions{SkipSeries: true})
	for _, want := range []string{"# House", "| Target Amount | ₹1,000,000 |", "| Required Monthly SIP | ₹4,304 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderProjection() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "## Growth") {
		t.Errorf("RenderProjection() rendered the series while skipped:\n%s", got)
	}
}

func TestRenderProjection_NotComputed(t *testing.T) {
	got := RenderProjection(sip.DefaultState(), ProjectionOptions{WithTax: true})
	if !strings.Contains(got, "_Results are not computed yet._") {
		t.Errorf("RenderProjection() = \n%s", got)
	}
	if strings.Contains(got, "After Tax") {
		t.Errorf("RenderProjection() rendered tax without results:\n%s", got)
	}
}

func TestRenderFunds(t *testing.T) {
	got := RenderFunds(sip.Funds)
	if !strings.Contains(got, "| 3 | SBI Small Cap Fund | Small Cap | High | 15.2% | 20% |") {
		t.Errorf("RenderFunds() = \n%s", got)
	}
}

func TestWriteSeriesCSV(t *testing.T) {
	state := computed(t, sip.DefaultState().Plan)
	var buf bytes.Buffer
	if err := WriteSeriesCSV(&buf, state.Series); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 12 {
		t.Fatalf("WriteSeriesCSV() wrote %d records, want 12", len(records))
	}
	if got := records[0]; got[0] != "year" || got[2] != "value" {
		t.Errorf("header = %v", got)
	}
	if got := records[11]; got[0] != "10" || got[1] != "600000" || got[2] != "1161695.38" {
		t.Errorf("last record = %v", got)
	}
}

func TestHTML(t *testing.T) {
	got, err := HTML("# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<h1>Title</h1>", "<table>", "<td>1</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() does not contain %q:\n%s", want, got)
		}
	}
}
