package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/sip"
	"github.com/google/subcommands"
)

// useDirStore points the global storage flags to a fresh folder for the test.
func useDirStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldKind, oldDir, oldKey := *storeKind, *storeDir, *stateKey
	t.Cleanup(func() { *storeKind, *storeDir, *stateKey = oldKind, oldDir, oldKey })
	*storeKind, *storeDir, *stateKey = "dir", dir, ""
	return dir
}

func parse(t *testing.T, c subcommands.Command, args ...string) *flag.FlagSet {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
	return f
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	return c.Execute(context.Background(), parse(t, c, args...))
}

func TestPlanFlags_Apply(t *testing.T) {
	base := sip.DefaultState().Plan

	c := &calcCmd{}
	f := parse(t, c, "-amount", "10000", "-timing", "end")
	got, err := c.apply(f, base)
	if err != nil {
		t.Fatalf("apply() unexpected error: %v", err)
	}
	if !got.PeriodicAmount.Equal(sip.D(10000)) || got.Timing != sip.EndOfPeriod {
		t.Errorf("apply() = %+v, want amount 10000 paid at the end of the month", got)
	}
	if got.Years != base.Years || !got.AnnualRatePercent.Equal(base.AnnualRatePercent) {
		t.Errorf("apply() changed flags that were not set: %+v", got)
	}

	c = &calcCmd{}
	f = parse(t, c, "-fund", "3", "-rate", "9")
	if got, _ = c.apply(f, base); !got.AnnualRatePercent.Equal(sip.D(9)) {
		t.Errorf("apply(-fund 3 -rate 9) rate = %s, want the explicit rate: 9", got.AnnualRatePercent)
	}

	for _, args := range [][]string{{"-timing", "later"}, {"-fund", "42"}, {"-f", "missing.yaml"}} {
		c = &calcCmd{}
		if _, err := c.apply(parse(t, c, args...), base); err == nil {
			t.Errorf("apply(%v) succeeded, want an error", args)
		}
	}
}

func TestPlanFlags_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "house.yaml")
	if err := os.WriteFile(file, []byte("name: house\ntargetAmount: 2500000\nyears: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c := &goalCmd{}
	got, err := c.apply(parse(t, c, "-f", file, "-years", "15"), sip.DefaultGoalState().Plan)
	if err != nil {
		t.Fatalf("apply() unexpected error: %v", err)
	}
	if got.Name != "house" || !got.TargetAmount.Equal(sip.D(2500000)) || got.Years != 15 {
		t.Errorf("apply() = %+v, want the file's plan with the flags on top", got)
	}
}

func TestCalculators(t *testing.T) {
	useDirStore(t)

	if got := run(t, &calcCmd{}, "-amount", "5000", "-years", "10", "-rate", "12"); got != subcommands.ExitSuccess {
		t.Fatalf("calc = %v, want success", got)
	}
	s, closer, err := OpenSession(context.Background(), SIPKey)
	if err != nil {
		t.Fatal(err)
	}
	defer closer()
	if !s.State().ResultsVisible || s.State().Result.MaturityValue.Round(0).String() != "1161695" {
		t.Errorf("stored SIP calculator = %+v, want the computed 1161695", s.State().Result)
	}

	if got := run(t, &calcCmd{}, "-years", "31"); got != subcommands.ExitFailure {
		t.Errorf("calc -years 31 = %v, want failure", got)
	}

	if got := run(t, &goalCmd{}, "-target", "1000000"); got != subcommands.ExitSuccess {
		t.Fatalf("goal = %v, want success", got)
	}
	goal, _, err := OpenSession(context.Background(), GoalKey)
	if err != nil {
		t.Fatal(err)
	}
	if got := goal.State().Plan.PeriodicAmount.Round(0).String(); got != "4304" {
		t.Errorf("goal planner monthly SIP = %s, want 4304", got)
	}

	if got := run(t, &viewCmd{}, "-granularity", "monthly"); got != subcommands.ExitSuccess {
		t.Errorf("view = %v, want success", got)
	}
	s, _, _ = OpenSession(context.Background(), SIPKey)
	if s.State().Granularity != sip.Monthly {
		t.Errorf("view -granularity did not persist the granularity")
	}

	csv := filepath.Join(t.TempDir(), "series.csv")
	if got := run(t, &exportCmd{}, "-granularity", "yearly", "-o", csv); got != subcommands.ExitSuccess {
		t.Fatalf("export = %v, want success", got)
	}
	data, err := os.ReadFile(csv)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(string(data)), "\n"); len(lines) != 12 {
		t.Errorf("export wrote %d lines, want a header and 11 yearly points", len(lines))
	}

	if got := run(t, &resetCmd{}); got != subcommands.ExitSuccess {
		t.Errorf("reset = %v, want success", got)
	}
	s, _, _ = OpenSession(context.Background(), SIPKey)
	if s.State().ResultsVisible {
		t.Errorf("reset did not hide the results")
	}
	if got := run(t, &exportCmd{}); got != subcommands.ExitFailure {
		t.Errorf("export after reset = %v, want failure", got)
	}
}

func TestQueryState(t *testing.T) {
	s := sip.DefaultState()

	got, err := queryState(s, "$.plan.years")
	if err != nil {
		t.Fatalf("queryState() unexpected error: %v", err)
	}
	if got != "10" {
		t.Errorf("queryState($.plan.years) = %q, want 10", got)
	}

	if got, _ = queryState(s, "$.granularity"); got != "yearly" {
		t.Errorf("queryState($.granularity) = %q, want yearly", got)
	}

	all, err := queryState(s, "")
	if err != nil || !strings.Contains(all, `"resultsVisible": false`) {
		t.Errorf("queryState() = %q, %v, want the indented state", all, err)
	}

	if _, err := queryState(s, "$.plan[?("); err == nil {
		t.Error("queryState() with an invalid path succeeded")
	}
}

func TestPlans(t *testing.T) {
	useDirStore(t)

	if got := run(t, &planSaveCmd{}, "-target", "2500000", "-years", "12"); got != subcommands.ExitUsageError {
		t.Errorf("save without a name = %v, want usage error", got)
	}
	if got := run(t, &planSaveCmd{}, "-name", "House", "-target", "2500000", "-years", "12", "-rate", "11"); got != subcommands.ExitSuccess {
		t.Fatalf("save = %v, want success", got)
	}
	if got := run(t, &planSaveCmd{}, "-name", "Retirement", "-sip"); got != subcommands.ExitSuccess {
		t.Fatalf("save -sip = %v, want success", got)
	}

	book, closer, err := OpenPlanBook(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer closer()
	list := book.List()
	if len(list) != 2 || list[0].Name != "House" || list[1].Plan.Mode != sip.SIP {
		t.Fatalf("saved plans = %+v, want House and a SIP Retirement", list)
	}

	if got := run(t, &planStatusCmd{}, list[0].ID, "active"); got != subcommands.ExitSuccess {
		t.Errorf("status = %v, want success", got)
	}
	if got := run(t, &planStatusCmd{}, list[0].ID, "sleeping"); got != subcommands.ExitUsageError {
		t.Errorf("status sleeping = %v, want usage error", got)
	}
	if got := run(t, &plansCmd{}); got != subcommands.ExitSuccess {
		t.Errorf("plans = %v, want success", got)
	}

	out := t.TempDir()
	if got := run(t, &publishCmd{}, "-o", out); got != subcommands.ExitSuccess {
		t.Fatalf("publish = %v, want success", got)
	}
	for _, file := range []string{"plans.md", filepath.Join("active", list[0].ID+".md"), filepath.Join("draft", list[1].ID+".md")} {
		if _, err := os.Stat(filepath.Join(out, file)); err != nil {
			t.Errorf("publish did not write %s: %v", file, err)
		}
	}

	if got := run(t, &planRmCmd{}, list[0].ID, "unknown"); got != subcommands.ExitFailure {
		t.Errorf("rm with an unknown ID = %v, want failure", got)
	}
	book, _, _ = OpenPlanBook(context.Background())
	if len(book.List()) != 1 {
		t.Errorf("rm did not remove the known plan")
	}
}

func TestOpenStore(t *testing.T) {
	old, oldURL := *storeKind, *databaseURL
	defer func() { *storeKind, *databaseURL = old, oldURL }()

	*storeKind = "tape"
	if _, _, err := OpenStore(context.Background()); err == nil {
		t.Error("OpenStore() with an unknown storage succeeded")
	}

	*storeKind, *databaseURL = "postgres", ""
	t.Setenv(EnvDatabaseURL, "")
	if _, _, err := OpenStore(context.Background()); err == nil || !strings.Contains(err.Error(), EnvDatabaseURL) {
		t.Errorf("OpenStore() without URL error = %v, want a hint about %s", err, EnvDatabaseURL)
	}

	*storeKind = ""
	t.Setenv(EnvStore, "memory")
	if s, _, err := OpenStore(context.Background()); err != nil || s == nil {
		t.Errorf("OpenStore() from the environment = %v, %v, want a memory store", s, err)
	}
}
