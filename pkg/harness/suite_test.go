package harness

import (
	"context"
	"testing"

	"github.com/psantana5/runnertest/internal/report"
	"github.com/psantana5/runnertest/pkg/freeze"
	"github.com/psantana5/runnertest/pkg/logging"
	"github.com/psantana5/runnertest/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	results []*report.Result
}

func (c *collector) RecordResult(r *report.Result) {
	c.results = append(c.results, r)
}

func outcomes(s *report.Summary) []models.Outcome {
	out := make([]models.Outcome, 0, len(s.Results))
	for _, r := range s.Results {
		out = append(out, r.Outcome)
	}
	return out
}

func path(r *report.Result) []models.Outcome {
	out := []models.Outcome{models.OutcomeNotRun}
	for _, tr := range r.Transitions {
		out = append(out, tr.To)
	}
	return out
}

func TestRunOutcomes(t *testing.T) {
	s := NewSuite("Demo", false)
	s.Register("pass", func(t freeze.TestingT) {
		assert.Equal(t, 1, 1)
	})
	s.Register("fail", func(t freeze.TestingT) {
		assert.Equal(t, 1, 2)
	})
	s.Register("require", func(t freeze.TestingT) {
		require.True(t, false)
		t.Errorf("unreachable")
	})
	s.Register("skip", func(t freeze.TestingT) {
		t.Skip("not on this platform")
	})
	s.Register("panic", func(t freeze.TestingT) {
		panic("boom")
	})

	summary := s.Run(context.Background())

	assert.Equal(t, []models.Outcome{
		models.OutcomePassed,
		models.OutcomeFailed,
		models.OutcomeFailed,
		models.OutcomeSkipped,
		models.OutcomeFailed,
	}, outcomes(summary))

	require.Len(t, summary.Results[2].Failures, 1, "FailNow must stop the body")
	assert.Equal(t, "not on this platform", summary.Results[3].SkipReason)
	assert.Equal(t, []string{"panic: boom"}, summary.Results[4].Failures)
	assert.False(t, summary.OK())
	assert.NotEmpty(t, summary.RunID)
}

func TestFrozenSuiteSkipsWithoutRunningBodies(t *testing.T) {
	s := NewSuite("Frozen", true)
	rec := logging.NewRecorder()
	calls := 0
	body := func(t freeze.TestingT) {
		calls++
		rec.Log(logging.INFO, "body ran")
	}
	s.Register("a", body, freeze.Control(s))
	s.Register("b", body, freeze.Control(s))

	summary := s.Run(context.Background())

	assert.Zero(t, calls)
	assert.Empty(t, rec.Entries())
	assert.True(t, summary.OK())
	assert.True(t, summary.Frozen)
	for _, r := range summary.Results {
		assert.Equal(t, models.OutcomeSkipped, r.Outcome)
		assert.Equal(t, freeze.FrozenReason, r.SkipReason)
		assert.Equal(t, []models.Outcome{models.OutcomeNotRun, models.OutcomeSkipped}, path(r))
	}
}

func TestTransitionsFollowStateMachine(t *testing.T) {
	s := NewSuite("Paths", false)
	s.Register("pass", func(freeze.TestingT) {}, freeze.Control(s))
	s.Register("skip-in-body", func(t freeze.TestingT) { t.Skip("later") }, freeze.Control(s))
	s.Register("fail", func(t freeze.TestingT) { t.Errorf("no") }, freeze.Control(s))

	summary := s.Run(context.Background())
	require.Len(t, summary.Results, 3)

	assert.Equal(t, []models.Outcome{models.OutcomeNotRun, models.OutcomeRunning, models.OutcomePassed}, path(summary.Results[0]))
	assert.Equal(t, []models.Outcome{models.OutcomeNotRun, models.OutcomeRunning, models.OutcomeSkipped}, path(summary.Results[1]))
	assert.Equal(t, []models.Outcome{models.OutcomeNotRun, models.OutcomeRunning, models.OutcomeFailed}, path(summary.Results[2]))
}

func TestFailureWinsOverSkip(t *testing.T) {
	s := NewSuite("Mixed", false)
	s.Register("both", func(t freeze.TestingT) {
		t.Errorf("first")
		t.Skip("then skip")
	})

	summary := s.Run(context.Background())
	assert.Equal(t, models.OutcomeFailed, summary.Results[0].Outcome)
	assert.Empty(t, summary.Results[0].SkipReason)
}

func TestRunOptions(t *testing.T) {
	s := NewSuite("Opts", false)
	s.Register("keep", func(freeze.TestingT) {})
	s.Register("drop", func(freeze.TestingT) {})

	obs := &collector{}
	rec := logging.NewRecorder()
	summary := s.Run(context.Background(),
		WithObserver(obs),
		WithLogger(rec),
		WithFilter(func(name string) bool { return name == "keep" }),
	)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, "keep", summary.Results[0].Case)
	assert.Equal(t, summary.Results, obs.results)
	assert.Equal(t, 2, rec.Count(logging.DEBUG))
}

func TestCanceledContextLeavesCasesNotRun(t *testing.T) {
	s := NewSuite("Canceled", false)
	ran := false
	s.Register("never", func(freeze.TestingT) { ran = true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary := s.Run(ctx)

	assert.False(t, ran)
	assert.Equal(t, models.OutcomeNotRun, summary.Results[0].Outcome)
	assert.True(t, summary.OK())
}

func TestCasesIsACopy(t *testing.T) {
	s := NewSuite("Copy", false)
	s.Register("a", nil)
	cases := s.Cases()
	cases[0].Name = "mutated"
	assert.Equal(t, "a", s.Cases()[0].Name)
}

func TestTLogf(t *testing.T) {
	s := NewSuite("Log", false)
	s.Register("logs", func(tt freeze.TestingT) {
		tt.(*T).Logf("distance=%d", 50)
	})
	summary := s.Run(context.Background())
	assert.Equal(t, []string{"distance=50"}, summary.Results[0].Output)
}
