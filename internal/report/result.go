package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/psantana5/runnertest/pkg/models"
)

// Result is the immutable record of one case invocation.
// The harness fills it once when the case reaches a terminal outcome.
type Result struct {
	Suite string `json:"suite" yaml:"suite"`
	Case  string `json:"case" yaml:"case"`

	Outcome     models.Outcome             `json:"outcome" yaml:"outcome"`
	Transitions []models.OutcomeTransition `json:"transitions,omitempty" yaml:"transitions,omitempty"`

	// SkipReason is set for skipped cases, Failures for failed ones
	SkipReason string   `json:"skip_reason,omitempty" yaml:"skip_reason,omitempty"`
	Failures   []string `json:"failures,omitempty" yaml:"failures,omitempty"`
	Output     []string `json:"output,omitempty" yaml:"output,omitempty"`

	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Summary aggregates the results of one suite run
type Summary struct {
	RunID  string    `json:"run_id" yaml:"run_id"`
	Suite  string    `json:"suite" yaml:"suite"`
	Frozen bool      `json:"frozen" yaml:"frozen"`
	Host   *HostInfo `json:"host,omitempty" yaml:"host,omitempty"`

	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration_ns"`

	Results []*Result `json:"results" yaml:"results"`
}

// NewSummary starts a summary with a fresh run ID
func NewSummary(suite string, frozen bool) *Summary {
	return &Summary{
		RunID:     uuid.New().String(),
		Suite:     suite,
		Frozen:    frozen,
		StartTime: time.Now(),
		Results:   make([]*Result, 0),
	}
}

// Add appends a finished result
func (s *Summary) Add(r *Result) {
	s.Results = append(s.Results, r)
}

// Finish stamps the end time. Call this ONCE after the last case.
func (s *Summary) Finish() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

// Count returns the number of results with the given outcome
func (s *Summary) Count(o models.Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// OK reports whether no case failed. Skipped and not-run cases do not count as failures.
func (s *Summary) OK() bool {
	return s.Count(models.OutcomeFailed) == 0
}
