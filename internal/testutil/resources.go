package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyTestMain runs the package tests and fails if goroutines are left
// running afterwards.
//
// Example usage:
//
//	func TestMain(m *testing.M) {
//	    testutil.VerifyTestMain(m)
//	}
func VerifyTestMain(m *testing.M, options ...goleak.Option) {
	goleak.VerifyTestMain(m, append(defaultOptions(), options...)...)
}

// VerifyNoLeaks verifies that no goroutines are leaked during test execution.
// Call it deferred at the top of non-parallel tests.
func VerifyNoLeaks(t *testing.T) {
	t.Helper()
	goleak.VerifyNone(t, defaultOptions()...)
}

// defaultOptions returns common ignore patterns for testing framework goroutines
func defaultOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("testing.tRunner.func1"),
		goleak.IgnoreTopFunction("testing.runTests"),
		goleak.IgnoreTopFunction("testing.(*M).Run"),
		goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
		goleak.IgnoreTopFunction("time.Sleep"),
	}
}
