package models

import (
	"fmt"
	"time"
)

// Outcome is the state of a single test case invocation
type Outcome string

const (
	OutcomeNotRun  Outcome = "not_run" // Registered, not yet invoked
	OutcomeSkipped Outcome = "skipped" // Gate vetoed the invocation, body never ran
	OutcomeRunning Outcome = "running" // Body is executing
	OutcomePassed  Outcome = "passed"  // Body returned with no failed assertion
	OutcomeFailed  Outcome = "failed"  // An assertion failed or a panic escaped the body
)

// validOutcomeTransitions maps from-state to allowed to-states
var validOutcomeTransitions = map[Outcome]map[Outcome]bool{
	OutcomeNotRun: {
		OutcomeSkipped: true, // NotRun → Skipped (suite frozen)
		OutcomeRunning: true, // NotRun → Running (gate passed)
	},
	OutcomeRunning: {
		OutcomePassed:  true,
		OutcomeFailed:  true,
		OutcomeSkipped: true, // body called Skip itself
	},
	// Terminal states
	OutcomeSkipped: {},
	OutcomePassed:  {},
	OutcomeFailed:  {},
}

// ValidateOutcomeTransition checks if an outcome transition is valid
func ValidateOutcomeTransition(from, to Outcome) error {
	allowed, exists := validOutcomeTransitions[from]
	if !exists {
		return fmt.Errorf("unknown source outcome: %s", from)
	}
	if !allowed[to] {
		return fmt.Errorf("invalid transition from %s to %s", from, to)
	}
	return nil
}

// IsTerminalOutcome returns true if no further transitions are allowed
func IsTerminalOutcome(o Outcome) bool {
	return o == OutcomeSkipped || o == OutcomePassed || o == OutcomeFailed
}

// OutcomeTransition records one outcome change with its timestamp
type OutcomeTransition struct {
	From      Outcome   `json:"from" yaml:"from"`
	To        Outcome   `json:"to" yaml:"to"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
