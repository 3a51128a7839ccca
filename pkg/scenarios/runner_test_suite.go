// Package scenarios holds the RunnerTest suite: two cases that drive
// models.Runner through its constructor failure paths behind freeze control.
package scenarios

import (
	"errors"

	"github.com/psantana5/runnertest/pkg/freeze"
	"github.com/psantana5/runnertest/pkg/harness"
	"github.com/psantana5/runnertest/pkg/logging"
	"github.com/psantana5/runnertest/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SuiteName is the grouping name reported for every case
const SuiteName = "RunnerTest"

// Log messages written by the cases
const (
	MsgInvalidSpeed = "invalid speed for Runner"
	MsgInvalidType  = "invalid data type for Runner"
)

// Constructor builds a runner; swapped out in tests
type Constructor func(name interface{}, speed interface{}) (*models.Runner, error)

// RunnerTest holds the case bodies.
//
// In permissive mode (Strict=false) an expected construction error is caught
// and logged as a WARNING, so the case passes whether or not validation
// fired. In strict mode the case fails unless construction fails with the
// expected kind.
type RunnerTest struct {
	Log       logging.Sink
	Strict    bool
	NewRunner Constructor
}

// NewRunnerTest creates the case bodies with the real constructor
func NewRunnerTest(log logging.Sink, strict bool) *RunnerTest {
	if log == nil {
		log = logging.Discard
	}
	return &RunnerTest{Log: log, Strict: strict, NewRunner: models.NewRunner}
}

// NewRunnerSuite registers test_walk and test_run, both gated on the suite's frozen flag
func NewRunnerSuite(log logging.Sink, frozen, strict bool) *harness.Suite {
	return NewRunnerTest(log, strict).Suite(frozen)
}

// Suite registers rt's cases on a new suite
func (rt *RunnerTest) Suite(frozen bool) *harness.Suite {
	s := harness.NewSuite(SuiteName, frozen)
	s.Register("test_walk", rt.TestWalk, freeze.Control(s))
	s.Register("test_run", rt.TestRun, freeze.Control(s))
	return s
}

// TestWalk constructs a runner with a negative speed and walks it ten times
func (rt *RunnerTest) TestWalk(t freeze.TestingT) {
	runner, err := rt.NewRunner("TestRunner", -5)
	if rt.Strict {
		require.Error(t, err, "NewRunner accepted a negative speed")
		assert.ErrorIs(t, err, models.ErrValue)
		return
	}
	if errors.Is(err, models.ErrValue) {
		rt.Log.Log(logging.WARNING, MsgInvalidSpeed)
		return
	}
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		runner.Walk()
	}
	if assert.Equal(t, 50.0, runner.Distance()) {
		rt.Log.Log(logging.INFO, `"test_walk" completed successfully`)
	}
}

// TestRun constructs a runner with a non-string name and runs it ten times
func (rt *RunnerTest) TestRun(t freeze.TestingT) {
	runner, err := rt.NewRunner(123, 5)
	if rt.Strict {
		require.Error(t, err, "NewRunner accepted a non-string name")
		assert.ErrorIs(t, err, models.ErrType)
		return
	}
	if errors.Is(err, models.ErrType) {
		rt.Log.Log(logging.WARNING, MsgInvalidType)
		return
	}
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		runner.Run()
	}
	if assert.Equal(t, 100.0, runner.Distance()) {
		rt.Log.Log(logging.INFO, `"test_run" completed successfully`)
	}
}
