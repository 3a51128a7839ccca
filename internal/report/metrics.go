package report

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are boring counters only.
// Every counter must be explainable by looking at a single Result.
type Metrics struct {
	registry *prometheus.Registry

	casesTotal    *prometheus.CounterVec // runnertest_cases_total{suite,outcome}
	caseSeconds   *prometheus.CounterVec // runnertest_case_seconds_total{suite}
	runsTotal     *prometheus.CounterVec // runnertest_runs_total{suite,status}
	lastRunTime   *prometheus.GaugeVec   // runnertest_last_run_timestamp_seconds{suite}
	lastRunFrozen *prometheus.GaugeVec   // runnertest_last_run_frozen{suite}
}

// NewMetrics creates counters registered on a private registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		casesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "runnertest_cases_total",
			Help: "Test case invocations by terminal outcome",
		}, []string{"suite", "outcome"}),
		caseSeconds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "runnertest_case_seconds_total",
			Help: "Wall time spent inside test cases",
		}, []string{"suite"}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "runnertest_runs_total",
			Help: "Suite runs by status (ok or failed)",
		}, []string{"suite", "status"}),
		lastRunTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "runnertest_last_run_timestamp_seconds",
			Help: "Unix time the last run of the suite finished",
		}, []string{"suite"}),
		lastRunFrozen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "runnertest_last_run_frozen",
			Help: "1 if the suite was frozen during its last run",
		}, []string{"suite"}),
	}

	m.registry.MustRegister(m.casesTotal, m.caseSeconds, m.runsTotal, m.lastRunTime, m.lastRunFrozen)
	return m
}

// Registry exposes the underlying registry as a Gatherer
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordResult updates the per-case counters from a single immutable Result
func (m *Metrics) RecordResult(r *Result) {
	m.casesTotal.WithLabelValues(r.Suite, string(r.Outcome)).Inc()
	m.caseSeconds.WithLabelValues(r.Suite).Add(r.Duration.Seconds())
}

// RecordSummary updates the per-run counters. Call it once per finished run.
func (m *Metrics) RecordSummary(s *Summary) {
	status := "ok"
	if !s.OK() {
		status = "failed"
	}
	m.runsTotal.WithLabelValues(s.Suite, status).Inc()
	m.lastRunTime.WithLabelValues(s.Suite).Set(float64(s.EndTime.Unix()))

	frozen := 0.0
	if s.Frozen {
		frozen = 1
	}
	m.lastRunFrozen.WithLabelValues(s.Suite).Set(frozen)
}
