package internal

import "github.com/pkg/errors"

// The engines' Step methods have no error return: for any finite input they
// always make progress. The only failures are broken invariants (for example,
// NaN coordinates that make the orientation test inconsistent). Those panic
// with a HullError, and the public API recovers to convert them to an error.

type HullError struct {
	error
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError{errors.Errorf(format, args...)})
}

// Convert a recovered HullError back into an error. Any other panic value is
// re-panicked, since it's a real bug.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.error
		}
		panic(r)
	}
	return nil
}
