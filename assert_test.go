// assert_test.go -- shared test assertion helper
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

import "testing"

// newAsserter returns a closure that fails t with a formatted message when
// cond is false, continuing the test (not a fatal failure).
func newAsserter(t *testing.T) func(cond bool, format string, args ...interface{}) {
	return func(cond bool, format string, args ...interface{}) {
		if !cond {
			t.Helper()
			t.Errorf(format, args...)
		}
	}
}
