// Package freeze gates test bodies behind a per-suite "frozen" flag.
//
// A frozen suite reports every wrapped test as skipped without running its
// body. The flag is read at invocation time, never written.
package freeze

// FrozenReason is the skip reason reported for frozen suites
const FrozenReason = "tests in this case are frozen"

// TestingT is the part of a test framework a wrapped body needs.
// *testing.T satisfies it, as does *harness.T.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
	Skip(args ...interface{})
	Name() string
}

// TestFunc is a test body
type TestFunc func(t TestingT)

// Frozen is implemented by whatever owns the suite-level flag
type Frozen interface {
	IsFrozen() bool
}

// Flag is a constant Frozen value
type Flag bool

// IsFrozen implements Frozen
func (f Flag) IsFrozen() bool { return bool(f) }

// Policy decides, per invocation, whether a body may run.
// When it may not, reason is reported as the skip message.
type Policy interface {
	ShouldRun(t TestingT) (run bool, reason string)
}

// PolicyFunc adapts a function to Policy
type PolicyFunc func(t TestingT) (bool, string)

// ShouldRun implements Policy
func (f PolicyFunc) ShouldRun(t TestingT) (bool, string) { return f(t) }

type control struct {
	owner Frozen
}

// Control returns the freeze policy for owner
func Control(owner Frozen) Policy {
	return control{owner: owner}
}

func (c control) ShouldRun(TestingT) (bool, string) {
	if c.owner.IsFrozen() {
		return false, FrozenReason
	}
	return true, ""
}

// Wrap composes policies around body. Policies are evaluated in order on
// every invocation; the first veto skips t and body is never called.
func Wrap(body TestFunc, policies ...Policy) TestFunc {
	return func(t TestingT) {
		for _, p := range policies {
			if run, reason := p.ShouldRun(t); !run {
				t.Skip(reason)
				// Skip does not return for *testing.T; other frameworks may
				return
			}
		}
		body(t)
	}
}

// Gate skips t when owner is frozen. It reports whether t was skipped, which
// is only observable for TestingT implementations whose Skip returns.
func Gate(t TestingT, owner Frozen) bool {
	if run, reason := Control(owner).ShouldRun(t); !run {
		t.Skip(reason)
		return true
	}
	return false
}
