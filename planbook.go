package sip

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrPlanNotFound is returned when no saved plan has the requested ID.
var ErrPlanNotFound = errors.New("plan not found")

// PlanStatus is the lifecycle status of a saved plan.
type PlanStatus int

const (
	Draft PlanStatus = iota
	Active
	Paused
	Completed
)

var planStatusNames = []string{"draft", "active", "paused", "completed"}

func (s PlanStatus) String() string {
	if s < 0 || int(s) >= len(planStatusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return planStatusNames[s]
}

func ParsePlanStatus(s string) (PlanStatus, error) {
	i := slices.Index(planStatusNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return Draft, fmt.Errorf("unknown plan status %q", s)
	}
	return PlanStatus(i), nil
}

func (s PlanStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *PlanStatus) UnmarshalText(text []byte) (err error) {
	*s, err = ParsePlanStatus(string(text))
	return err
}

// SavedPlan is a named plan with its computed result.
type SavedPlan struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Plan      ContributionPlan `json:"plan"`
	Result    ProjectionResult `json:"result"`
	Status    PlanStatus       `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// State returns the computed calculator state of the saved plan, sampled at g.
func (p SavedPlan) State(g Granularity) CalculatorState {
	return CalculatorState{
		Plan:           p.Plan,
		Result:         p.Result,
		Granularity:    g,
		ResultsVisible: true,
		Series:         BuildSeries(p.Plan, g),
	}
}

// PlanSummary aggregates a plan book.
type PlanSummary struct {
	TotalPlans        int             `json:"totalPlans"`
	TotalTargetAmount decimal.Decimal `json:"totalTargetAmount"`
	TotalMonthlySIP   decimal.Decimal `json:"totalMonthlySIP"`
}

// PlanBook is the list of saved plans, persisted as a single blob in a Store.
//
// Unlike the calculator state, saved plans are user data: persistence errors are returned.
type PlanBook struct {
	store Store
	key   string
	plans []SavedPlan
	now   func() time.Time
}

// OpenPlanBook reads the plan book stored under key, an absent key is an empty book.
func OpenPlanBook(store Store, key string) (*PlanBook, error) {
	b := &PlanBook{store: store, key: key, now: time.Now}
	blob, ok, err := store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("cannot read plan book %q: %w", key, err)
	}
	if !ok {
		return b, nil
	}
	if err := json.Unmarshal([]byte(blob), &b.plans); err != nil {
		return nil, fmt.Errorf("format error in plan book %q: %w", key, err)
	}
	return b, nil
}

func (b *PlanBook) save() error {
	data, err := json.Marshal(b.plans)
	if err != nil {
		return fmt.Errorf("cannot encode plan book %q: %w", b.key, err)
	}
	if err := b.store.Set(b.key, string(data)); err != nil {
		return fmt.Errorf("cannot write plan book %q: %w", b.key, err)
	}
	return nil
}

// Add computes 'plan' and saves it as a draft under 'name'.
func (b *PlanBook) Add(name string, plan ContributionPlan) (SavedPlan, error) {
	plan, result, err := Project(plan)
	if err != nil {
		return SavedPlan{}, err
	}
	if name == "" {
		name = plan.Name
	}
	now := b.now()
	sp := SavedPlan{
		ID:        uuid.New().String(),
		Name:      name,
		Plan:      plan,
		Result:    result,
		Status:    Draft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.plans = append(b.plans, sp)
	if err := b.save(); err != nil {
		b.plans = b.plans[:len(b.plans)-1]
		return SavedPlan{}, err
	}
	return sp, nil
}

func (b *PlanBook) index(id string) (int, error) {
	i := slices.IndexFunc(b.plans, func(p SavedPlan) bool { return p.ID == id })
	if i < 0 {
		return i, fmt.Errorf("%w: %q", ErrPlanNotFound, id)
	}
	return i, nil
}

// Get returns the plan with 'id'.
func (b *PlanBook) Get(id string) (SavedPlan, error) {
	i, err := b.index(id)
	if err != nil {
		return SavedPlan{}, err
	}
	return b.plans[i], nil
}

// Remove deletes the plan with 'id'.
func (b *PlanBook) Remove(id string) error {
	i, err := b.index(id)
	if err != nil {
		return err
	}
	removed := b.plans[i]
	b.plans = slices.Delete(b.plans, i, i+1)
	if err := b.save(); err != nil {
		b.plans = slices.Insert(b.plans, i, removed)
		return err
	}
	return nil
}

// SetStatus changes the status of the plan with 'id'.
func (b *PlanBook) SetStatus(id string, status PlanStatus) (SavedPlan, error) {
	i, err := b.index(id)
	if err != nil {
		return SavedPlan{}, err
	}
	old := b.plans[i]
	b.plans[i].Status = status
	b.plans[i].UpdatedAt = b.now()
	if err := b.save(); err != nil {
		b.plans[i] = old
		return SavedPlan{}, err
	}
	return b.plans[i], nil
}

// List returns the saved plans, oldest first.
func (b *PlanBook) List() []SavedPlan {
	list := slices.Clone(b.plans)
	slices.SortStableFunc(list, func(x, y SavedPlan) int { return x.CreatedAt.Compare(y.CreatedAt) })
	return list
}

// Summary aggregates the saved plans.
func (b *PlanBook) Summary() PlanSummary {
	s := PlanSummary{TotalPlans: len(b.plans), TotalTargetAmount: decimal.Zero, TotalMonthlySIP: decimal.Zero}
	for _, p := range b.plans {
		s.TotalTargetAmount = s.TotalTargetAmount.Add(p.Result.MaturityValue)
		s.TotalMonthlySIP = s.TotalMonthlySIP.Add(p.Plan.PeriodicAmount)
	}
	return s
}
