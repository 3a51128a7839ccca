package harness

import (
	"fmt"
	"strings"
)

// skipNow and failNow unwind a case body the way runtime.Goexit does for *testing.T
type skipNow struct{}
type failNow struct{}

// T is the per-case handle passed to test bodies.
// It satisfies freeze.TestingT and the TestingT interfaces of testify's
// assert and require packages.
type T struct {
	name     string
	failed   bool
	skipped  bool
	reason   string
	failures []string
	output   []string
}

func newT(name string) *T {
	return &T{name: name}
}

// Name returns the case name
func (t *T) Name() string {
	return t.name
}

// Helper is a no-op; testify calls it when present
func (t *T) Helper() {}

// Errorf records a failure and lets the body continue
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	t.failures = append(t.failures, fmt.Sprintf(format, args...))
}

// Error records a failure built from args
func (t *T) Error(args ...interface{}) {
	t.failed = true
	t.failures = append(t.failures, fmt.Sprint(args...))
}

// Fail marks the case failed without a message
func (t *T) Fail() {
	t.failed = true
}

// FailNow marks the case failed and stops the body
func (t *T) FailNow() {
	t.failed = true
	panic(failNow{})
}

// Fatalf records a failure and stops the body
func (t *T) Fatalf(format string, args ...interface{}) {
	t.Errorf(format, args...)
	t.FailNow()
}

// Skip marks the case skipped with a reason and stops the body
func (t *T) Skip(args ...interface{}) {
	t.skipped = true
	t.reason = strings.TrimSpace(fmt.Sprint(args...))
	panic(skipNow{})
}

// Skipf is Skip with formatting
func (t *T) Skipf(format string, args ...interface{}) {
	t.Skip(fmt.Sprintf(format, args...))
}

// Logf appends a line to the case output
func (t *T) Logf(format string, args ...interface{}) {
	t.output = append(t.output, fmt.Sprintf(format, args...))
}

// Failed reports whether the case has failed
func (t *T) Failed() bool {
	return t.failed
}

// Skipped reports whether the case was skipped
func (t *T) Skipped() bool {
	return t.skipped
}
