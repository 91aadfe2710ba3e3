package stream

import (
	"context"
	"errors"

	"github.com/zeebo/errs"

	"github.com/cyeganeh01248/safe-result/pkg/safe"
)

// ErrGuard tags the failures minted by Guard and GuardAll so callers can
// match them by class.
var ErrGuard = errs.Class("guard")

// Engine is one processing stage: it turns an incoming Result into an
// outgoing one. Engines built by this package short-circuit failed
// inputs; user callbacks only ever see payloads.
type Engine[In, Out any] func(ctx context.Context, input safe.Result[In]) safe.Result[Out]

// Then builds an engine from a result-returning function
func Then[In, Out any](onOk func(ctx context.Context, v In) safe.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, input safe.Result[In]) safe.Result[Out] {
		v, ok := input.Value()
		if !ok {
			return safe.ErrFrom[In, Out](input)
		}
		return onOk(ctx, v)
	}
}

// Map builds an engine from a pure transformation
func Map[In, Out any](onOk func(ctx context.Context, v In) Out) Engine[In, Out] {
	return func(ctx context.Context, input safe.Result[In]) safe.Result[Out] {
		v, ok := input.Value()
		if !ok {
			return safe.ErrFrom[In, Out](input)
		}
		return safe.Ok(onOk(ctx, v))
	}
}

// Try builds an engine that runs a (Out, error) function behind a
// per-item intercept-all boundary: returned faults and fault panics
// both become failures of that one item, never of the stream.
func Try[In, Out any](try func(ctx context.Context, v In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input safe.Result[In]) safe.Result[Out] {
		v, ok := input.Value()
		if !ok {
			return safe.ErrFrom[In, Out](input)
		}
		return safe.Do(ctx, func(ctx context.Context) (Out, error) {
			return try(ctx, v)
		})
	}
}

// Guard builds a validating engine. Items failing the check become
// failures carrying an ErrGuard-class fault built from the reason.
func Guard[T any](check func(ctx context.Context, v T) (valid bool, reason string)) Engine[T, T] {
	return func(ctx context.Context, input safe.Result[T]) safe.Result[T] {
		v, ok := input.Value()
		if !ok {
			return input
		}
		if valid, reason := check(ctx, v); !valid {
			return safe.Err[T](ErrGuard.New("%s", reason))
		}
		return input
	}
}

// GuardAll runs every check against the item, or stops at the first
// miss when breakOnFirst is set. The reasons are joined into one fault.
func GuardAll[T any](breakOnFirst bool, checks ...func(ctx context.Context, v T) (valid bool, reason string)) Engine[T, T] {
	return func(ctx context.Context, input safe.Result[T]) safe.Result[T] {
		v, ok := input.Value()
		if !ok {
			return input
		}

		var reasons []error
		for _, check := range checks {
			valid, reason := check(ctx, v)
			if valid {
				continue
			}
			reasons = append(reasons, ErrGuard.New("%s", reason))
			if breakOnFirst {
				break
			}
		}

		if len(reasons) == 0 {
			return input
		}
		return safe.Err[T](errors.Join(reasons...))
	}
}

// Tee builds a pass-through engine that runs a side effect on
// successful items without changing them
func Tee[T any](sideEffect func(ctx context.Context, r safe.Result[T])) Engine[T, T] {
	return func(ctx context.Context, input safe.Result[T]) safe.Result[T] {
		if input.IsOk() {
			sideEffect(ctx, input)
		}
		return input
	}
}

// Pipe composes two engines into one stage
func Pipe[A, B, C any](first Engine[A, B], second Engine[B, C]) Engine[A, C] {
	return func(ctx context.Context, input safe.Result[A]) safe.Result[C] {
		return second(ctx, first(ctx, input))
	}
}
