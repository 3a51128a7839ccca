// Package harness is a small test host: it registers named cases on a
// suite, invokes them in registration order and reports a terminal outcome
// (passed, failed, skipped) per case.
package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/psantana5/runnertest/internal/report"
	"github.com/psantana5/runnertest/pkg/freeze"
	"github.com/psantana5/runnertest/pkg/logging"
	"github.com/psantana5/runnertest/pkg/models"
)

// Case is a registered test: a body plus the policies composed around it
type Case struct {
	Name     string
	Body     freeze.TestFunc
	Policies []freeze.Policy
}

// Observer is notified of every finished case
type Observer interface {
	RecordResult(r *report.Result)
}

// Suite groups cases and owns the frozen flag they are gated on
type Suite struct {
	name   string
	frozen bool
	cases  []Case
}

// NewSuite creates an empty suite
func NewSuite(name string, frozen bool) *Suite {
	return &Suite{name: name, frozen: frozen}
}

// Name returns the suite name
func (s *Suite) Name() string {
	return s.name
}

// IsFrozen implements freeze.Frozen
func (s *Suite) IsFrozen() bool {
	return s.frozen
}

// Register adds a case. Policies are evaluated in order on every invocation.
func (s *Suite) Register(name string, body freeze.TestFunc, policies ...freeze.Policy) {
	s.cases = append(s.cases, Case{Name: name, Body: body, Policies: policies})
}

// Cases returns the registered cases in registration order
func (s *Suite) Cases() []Case {
	out := make([]Case, len(s.cases))
	copy(out, s.cases)
	return out
}

// RunOption configures a single Run
type RunOption func(*runConfig)

type runConfig struct {
	logger    logging.Sink
	observers []Observer
	filter    func(name string) bool
}

// WithLogger sets the sink for harness progress messages (DEBUG level)
func WithLogger(l logging.Sink) RunOption {
	return func(c *runConfig) { c.logger = l }
}

// WithObserver adds an observer for finished cases
func WithObserver(o Observer) RunOption {
	return func(c *runConfig) { c.observers = append(c.observers, o) }
}

// WithFilter restricts the run to cases whose name matches
func WithFilter(match func(name string) bool) RunOption {
	return func(c *runConfig) { c.filter = match }
}

// Run invokes every registered case once, in registration order.
// Cases not reached before ctx is done are reported as not run.
func (s *Suite) Run(ctx context.Context, opts ...RunOption) *report.Summary {
	cfg := &runConfig{logger: logging.Discard}
	for _, opt := range opts {
		opt(cfg)
	}

	summary := report.NewSummary(s.name, s.frozen)
	for _, c := range s.cases {
		if cfg.filter != nil && !cfg.filter(c.Name) {
			continue
		}

		var result *report.Result
		if ctx.Err() != nil {
			now := time.Now()
			result = &report.Result{
				Suite:     s.name,
				Case:      c.Name,
				Outcome:   models.OutcomeNotRun,
				StartTime: now,
				EndTime:   now,
			}
		} else {
			cfg.logger.Log(logging.DEBUG, fmt.Sprintf("running %s (%s)", c.Name, s.name))
			result = s.runCase(c)
			cfg.logger.Log(logging.DEBUG, fmt.Sprintf("%s (%s): %s", c.Name, s.name, result.Outcome))
		}

		summary.Add(result)
		for _, o := range cfg.observers {
			o.RecordResult(result)
		}
	}
	summary.Finish()

	return summary
}

// caseRun tracks one invocation through the outcome state machine
type caseRun struct {
	state       models.Outcome
	transitions []models.OutcomeTransition
}

func (cr *caseRun) moveTo(to models.Outcome) {
	if err := models.ValidateOutcomeTransition(cr.state, to); err != nil {
		panic(fmt.Sprintf("harness: %v", err))
	}
	cr.transitions = append(cr.transitions, models.OutcomeTransition{
		From:      cr.state,
		To:        to,
		Timestamp: time.Now(),
	})
	cr.state = to
}

func (s *Suite) runCase(c Case) *report.Result {
	t := newT(c.Name)
	cr := &caseRun{state: models.OutcomeNotRun}

	// The marker runs only once every policy has let the case through,
	// which is what separates NotRun → Skipped from Running → Skipped.
	body := func(tt freeze.TestingT) {
		cr.moveTo(models.OutcomeRunning)
		if c.Body != nil {
			c.Body(tt)
		}
	}

	start := time.Now()
	invoke(freeze.Wrap(body, c.Policies...), t)
	end := time.Now()

	switch {
	case t.failed:
		if cr.state == models.OutcomeNotRun {
			// A policy itself reported a failure before the body started
			cr.moveTo(models.OutcomeRunning)
		}
		cr.moveTo(models.OutcomeFailed)
	case t.skipped:
		cr.moveTo(models.OutcomeSkipped)
	default:
		cr.moveTo(models.OutcomePassed)
	}

	result := &report.Result{
		Suite:       s.name,
		Case:        c.Name,
		Outcome:     cr.state,
		Transitions: cr.transitions,
		Failures:    t.failures,
		Output:      t.output,
		StartTime:   start,
		EndTime:     end,
		Duration:    end.Sub(start),
	}
	if cr.state == models.OutcomeSkipped {
		result.SkipReason = t.reason
	}
	return result
}

// invoke runs fn, containing skip/fail unwinding and any panic escaping the body
func invoke(fn freeze.TestFunc, t *T) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r.(type) {
		case skipNow, failNow:
		default:
			t.failed = true
			t.failures = append(t.failures, fmt.Sprintf("panic: %v", r))
		}
	}()
	fn(t)
}
