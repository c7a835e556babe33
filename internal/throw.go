package internal

import "github.com/pkg/errors"

// The hull search is recursive, and its only failure modes are broken
// preconditions deep inside it. Rather than thread errors through every level,
// we panic, and the public API recovers to convert to an error.

type HullError struct {
	error
}

func (e HullError) Unwrap() error {
	return e.error
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError{errors.Errorf(format, args...)})
}

// Convert a recovered HullError back into an error. Anything else that was
// recovered is a real bug, so it is re-panicked.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.error
		}
		panic(r)
	}
	return nil
}
