package sip

import "go.uber.org/zap"

// Session orchestrates the calculator operations on a state persisted under a single key.
//
// A Session is not safe for concurrent use, callers must serialize their calls.
type Session struct {
	store    Store
	key      string
	log      *zap.Logger
	defaults CalculatorState
	state    CalculatorState
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithDefaults sets the state used on first use and on Reset.
func WithDefaults(defaults CalculatorState) Option {
	return func(s *Session) { s.defaults = defaults }
}

// NewSession opens the calculator state stored under 'key' in 'store'.
func NewSession(store Store, key string, opts ...Option) *Session {
	s := &Session{
		store:    store,
		key:      key,
		log:      zap.NewNop(),
		defaults: DefaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = LoadState(store, key, s.defaults, s.log)
	return s
}

// Key returns the storage key of the session.
func (s *Session) Key() string { return s.key }

// State returns a copy of the current state.
func (s *Session) State() CalculatorState { return s.state }

// Series returns the current projection series, empty when results are not visible.
func (s *Session) Series() ProjectionSeries { return s.state.Series }

// Recompute validates 'plan', computes its result and series and makes them the current state.
//
// On invalid input it returns a *ValidationError and the state is left unchanged.
func (s *Session) Recompute(plan ContributionPlan) (ProjectionResult, error) {
	if plan.Currency == "" {
		plan.Currency = s.state.Plan.Currency
	}
	plan, result, err := Project(plan)
	if err != nil {
		return ProjectionResult{}, err
	}
	next := s.state
	next.Plan = plan
	next.Result = result
	next.Series = BuildSeries(plan, next.Granularity)
	next.ResultsVisible = true
	s.state = next
	s.save()
	return result, nil
}

// SetGranularity changes the series granularity, rebuilding the series from the current plan.
// Scalar results are not recomputed.
func (s *Session) SetGranularity(g Granularity) {
	s.state.Granularity = g
	if s.state.ResultsVisible {
		s.state.Series = BuildSeries(s.state.Plan, g)
	}
	s.save()
}

// Reset restores the default state and hides the results.
func (s *Session) Reset() {
	s.state = s.defaults
	s.state.ResultsVisible = false
	s.state.Series = ProjectionSeries{}
	s.save()
}

func (s *Session) save() { SaveState(s.store, s.key, s.state, s.log) }
