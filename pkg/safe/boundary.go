package safe

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Op is the shape of a fallible operation run through a boundary.
type Op[T any] func(ctx context.Context) (T, error)

// signal is the propagation payload produced by Result.Unwrap on a failure.
// It travels the panic channel and only boundary wrappers consume it; the
// type is unexported so application code can neither raise nor match it
// directly. It carries the finished failure, so crossing any number of
// boundaries re-wraps nothing and captures nothing twice.
type signal struct {
	fault     error
	trace     Trace
	id        uuid.UUID
	createdAt time.Time
}

// Error renders the carried fault, so a signal that escapes every boundary
// still reads as the original failure in a crash dump.
func (s *signal) Error() string {
	return s.fault.Error()
}

func (s *signal) Unwrap() error {
	return s.fault
}

// asResult rebuilds the carried failure under a new payload type.
func asResult[T any](s *signal) Result[T] {
	return Result[T]{
		fault:     s.fault,
		trace:     s.trace,
		id:        s.id,
		createdAt: s.createdAt,
	}
}

// Do runs op and normalizes every fault into a Result: a non-nil returned
// error, an error-valued panic (runtime errors included), or a failure
// propagated by Unwrap. The first two are captured here, with the trace
// taken at this boundary; a propagated failure comes back exactly as it was
// first captured. A panic whose value is not an error is not a fault and
// continues to panic.
//
// Cancellation is data to Do: a ctx error returned by op becomes a regular
// failure, distinguishable with IsCancellation. Use DoWith or the future
// package to keep cancellation on the error channel.
func Do[T any](ctx context.Context, op Op[T]) Result[T] {
	return run(ctx, op, 1)
}

// Safe lifts op into a function returning its outcome as a Result, run
// through the Do boundary.
func Safe[T any](op Op[T]) func(ctx context.Context) Result[T] {
	return func(ctx context.Context) Result[T] {
		return run(ctx, op, 1)
	}
}

// run is the catch-all boundary. skip counts wrapper frames between the
// user call site and run, so captured traces start at the user.
func run[T any](ctx context.Context, op Op[T], skip int) (res Result[T]) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		switch p := rec.(type) {
		case *signal:
			res = asResult[T](p)
		case error:
			if IsNil(p) {
				panic(rec)
			}
			res = newFailure[T](p, 2)
		default:
			panic(rec)
		}
	}()

	v, err := op(ctx)
	if err != nil {
		return newFailure[T](err, skip+1)
	}
	return Ok(v)
}

// DoWith runs op and intercepts only faults the catch set matches. A
// matched returned error or error panic is captured into a failure; a
// matched propagated failure is returned as first captured. Everything
// else stays on its original channel: an unmatched returned error comes
// back on the error return unchanged, an unmatched panic (propagated
// failures included) continues to panic so an outer boundary can take it.
//
// Cancellation never matches, whatever the set says; a ctx error always
// comes back on the error return. An empty set catches nothing.
func DoWith[T any](ctx context.Context, op Op[T], catch ...Catcher) (Result[T], error) {
	return runWith(ctx, op, catch, 1)
}

// SafeWith lifts op the way Safe does, intercepting only the catch set.
func SafeWith[T any](op Op[T], catch ...Catcher) func(ctx context.Context) (Result[T], error) {
	return func(ctx context.Context) (Result[T], error) {
		return runWith(ctx, op, catch, 1)
	}
}

// runWith is the enumerated boundary behind DoWith and SafeWith.
func runWith[T any](ctx context.Context, op Op[T], catch []Catcher, skip int) (res Result[T], err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		switch p := rec.(type) {
		case *signal:
			if !IsCancellation(p.fault) && matchesAny(p.fault, catch) {
				res = asResult[T](p)
				err = nil
				return
			}
			panic(rec)
		case error:
			if IsNil(p) || IsCancellation(p) || !matchesAny(p, catch) {
				panic(rec)
			}
			res = newFailure[T](p, 2)
			err = nil
		default:
			panic(rec)
		}
	}()

	v, opErr := op(ctx)
	if opErr != nil {
		if IsCancellation(opErr) || !matchesAny(opErr, catch) {
			var zero Result[T]
			return zero, opErr
		}
		return newFailure[T](opErr, skip+1), nil
	}
	return Ok(v), nil
}
