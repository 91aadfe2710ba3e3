package safe

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, a typed nil pointer boxed in the
// interface included.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors flattens a joined error into its parts. Nil yields an empty
// slice; an error without Unwrap() []error yields itself.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err represents context cancellation or an
// expired deadline. Boundaries use it to keep cancellation out of catch
// sets; catch-all callers use it to tell a canceled failure from a domain
// one.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
