package sip

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store is the key-value persistence surface the engine reads and writes its state from.
type Store interface {
	// Get returns the value stored under key, ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set overwrites the value stored under key.
	Set(key, value string) error
}

// CalculatorState is the snapshot of a calculator: inputs, results and view preferences.
type CalculatorState struct {
	Plan           ContributionPlan `json:"plan"`
	Result         ProjectionResult `json:"result"`
	Granularity    Granularity      `json:"granularity"`
	ResultsVisible bool             `json:"resultsVisible"`

	// Series is derived from Plan and Granularity, it is not persisted.
	Series ProjectionSeries `json:"-"`
}

// DefaultState returns the state of a SIP calculator used for the first time.
func DefaultState() CalculatorState {
	return CalculatorState{
		Plan: ContributionPlan{
			Mode:              SIP,
			PeriodicAmount:    decimal.NewFromInt(5000),
			TargetAmount:      decimal.Zero,
			Years:             10,
			AnnualRatePercent: decimal.NewFromInt(12),
			Timing:            BeginningOfPeriod,
			Currency:          DefaultCurrency,
		},
		Granularity: Yearly,
	}
}

// DefaultGoalState returns the state of a goal planner used for the first time.
func DefaultGoalState() CalculatorState {
	s := DefaultState()
	s.Plan.Mode = Goal
	s.Plan.PeriodicAmount = decimal.Zero
	s.Plan.TargetAmount = decimal.NewFromInt(1_000_000)
	return s
}

// Equal compares the persisted fields of two states.
func (s CalculatorState) Equal(t CalculatorState) bool {
	return s.Plan.Equal(t.Plan) &&
		s.Result.Equal(t.Result) &&
		s.Granularity == t.Granularity &&
		s.ResultsVisible == t.ResultsVisible
}

// MarshalState encodes the state into the blob stored in a Store.
func MarshalState(s CalculatorState) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("cannot encode calculator state: %w", err)
	}
	return string(data), nil
}

// UnmarshalState decodes a blob produced by MarshalState.
// The plan must be valid, and the series is rebuilt when results are visible.
func UnmarshalState(blob string) (CalculatorState, error) {
	var s CalculatorState
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return s, fmt.Errorf("cannot decode calculator state: %w", err)
	}
	if err := s.Plan.Validate(); err != nil {
		return s, fmt.Errorf("cannot decode calculator state: %w", err)
	}
	if s.ResultsVisible {
		s.Series = BuildSeries(s.Plan, s.Granularity)
	}
	return s, nil
}

// LoadState reads the state stored under key, or returns 'defaults' when the key is absent or unreadable.
// Failures are logged, never returned.
func LoadState(store Store, key string, defaults CalculatorState, log *zap.Logger) CalculatorState {
	blob, ok, err := store.Get(key)
	if err != nil {
		log.Warn("load-calculator-state failed, using defaults", zap.String("key", key), zap.Error(err))
		return defaults
	}
	if !ok {
		log.Debug("load-calculator-state absent, using defaults", zap.String("key", key))
		return defaults
	}
	s, err := UnmarshalState(blob)
	if err != nil {
		log.Warn("load-calculator-state unreadable, using defaults", zap.String("key", key), zap.Error(err))
		return defaults
	}
	return s
}

// SaveState overwrites the state stored under key.
// Failures are logged, never returned: a calculator keeps working without its cache.
func SaveState(store Store, key string, s CalculatorState, log *zap.Logger) {
	blob, err := MarshalState(s)
	if err == nil {
		err = store.Set(key, blob)
	}
	if err != nil {
		log.Warn("save-calculator-state failed (ignored)", zap.String("key", key), zap.Error(err))
		return
	}
	log.Debug("save-calculator-state", zap.String("key", key), zap.Int("bytes", len(blob)))
}
