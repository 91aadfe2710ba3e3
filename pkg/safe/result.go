package safe

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of a fallible operation: a payload when it
// succeeded, or the original fault plus a stack trace captured exactly once
// when the fault was first normalized. There is no third state; the zero
// Result is Ok with the zero value of T.
//
// Results are immutable and safe to share across goroutines.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	fault     error
	trace     Trace
}

// Ok returns a success Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err returns a failure Result carrying err untouched, with a stack trace
// captured at the call site. A nil err, typed nil included, yields Ok of
// the zero value.
func Err[T any](err error) Result[T] {
	if IsNil(err) {
		var zero T
		return Ok(zero)
	}
	return newFailure[T](err, 1)
}

// From adapts a conventional (value, error) return into a Result.
func From[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Ok(v)
	}
	return newFailure[T](err, 1)
}

// ErrFrom converts a failure from one payload type to another, keeping the
// fault, the trace and the capture identity. Chains and streams use it to
// carry a failure across a type change without a second capture.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		fault:     from.fault,
		trace:     from.trace,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// newFailure builds a failure with a trace whose first frame is the caller
// skip levels above newFailure's caller.
func newFailure[T any](err error, skip int) Result[T] {
	return Result[T]{
		fault:     err,
		trace:     capture(skip + 1),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// IsOk reports whether the Result holds a payload.
func (r Result[T]) IsOk() bool {
	return r.fault == nil
}

// IsErr reports whether the Result holds a fault.
func (r Result[T]) IsErr() bool {
	return r.fault != nil
}

// Value returns the payload and reports whether it is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.fault == nil
}

// Err returns the fault for a failure, nil for Ok.
func (r Result[T]) Err() error {
	return r.fault
}

// Get returns both slots at once, for callers re-entering the plain
// (value, error) convention.
func (r Result[T]) Get() (T, error) {
	return r.value, r.fault
}

// Unwrap returns the payload for Ok. For a failure it panics with an
// internal propagation signal that the boundary wrappers (Do, DoWith,
// future.Go, stream.Try) turn back into this very failure, trace and
// identity intact. Outside any boundary the signal surfaces as an ordinary
// panic rendering the fault.
func (r Result[T]) Unwrap() T {
	if r.fault != nil {
		panic(&signal{
			fault:     r.fault,
			trace:     r.trace,
			id:        r.id,
			createdAt: r.createdAt,
		})
	}
	return r.value
}

// UnwrapOr returns the payload for Ok and def for a failure. It never
// propagates.
func (r Result[T]) UnwrapOr(def T) T {
	if r.fault != nil {
		return def
	}
	return r.value
}

// Trace returns a copy of the stack snapshot recorded when the failure was
// captured. Ok results have none.
func (r Result[T]) Trace() Trace {
	if len(r.trace) == 0 {
		return nil
	}
	t := make(Trace, len(r.trace))
	copy(t, r.trace)
	return t
}

// Id identifies the capture event. A failure that crosses boundaries via
// Unwrap keeps its id, so equality of ids proves no re-capture happened.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt is the capture time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// String renders the short form, Ok(value) or Err(fault).
func (r Result[T]) String() string {
	if r.fault != nil {
		return fmt.Sprintf("Err(%v)", r.fault)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Describe renders the fault message followed by the captured trace. The
// output is a pure function of the stored snapshot: any number of calls
// produce byte-identical text. For Ok it equals String().
func (r Result[T]) Describe() string {
	if r.fault == nil {
		return r.String()
	}

	var b strings.Builder
	b.WriteString("Err(")
	b.WriteString(r.fault.Error())
	b.WriteString(")")
	if len(r.trace) > 0 {
		b.WriteString("\ncaptured at:\n")
		b.WriteString(r.trace.String())
	}
	return b.String()
}

// Flatten collapses a nested Result. An outer failure keeps its capture
// identity; an outer Ok yields the inner Result as is.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if r.fault != nil {
		return ErrFrom[Result[T], T](r)
	}
	return r.value
}

// Equal reports whether two Results are equivalent: Ok compares by payload,
// failures compare by fault type and message. Capture identity (id, trace,
// time) takes no part.
func Equal[T comparable](a, b Result[T]) bool {
	if a.fault == nil && b.fault == nil {
		return a.value == b.value
	}
	if a.fault == nil || b.fault == nil {
		return false
	}
	return reflect.TypeOf(a.fault) == reflect.TypeOf(b.fault) &&
		a.fault.Error() == b.fault.Error()
}

// ErrIs reports whether r is a failure whose fault matches target in the
// errors.Is sense.
func ErrIs[T any](r Result[T], target error) bool {
	return r.fault != nil && errors.Is(r.fault, target)
}

// ErrAs reports whether r is a failure whose fault is an E, handing the
// typed fault over so the caller branches once. The payload type is
// inferred from the argument; only E needs naming:
//
//	if perr, ok := safe.ErrAs[*ParseError](res); ok { ... }
func ErrAs[E error, T any](r Result[T]) (E, bool) {
	var target E
	if r.fault == nil {
		return target, false
	}
	ok := errors.As(r.fault, &target)
	return target, ok
}
