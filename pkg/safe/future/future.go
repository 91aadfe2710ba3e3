// Package future provides asynchronous boundaries over safe.Result. A
// Future is a placeholder for a Result that may not yet be available,
// allowing code to proceed without blocking until the outcome is needed.
//
// Go and GoWith are the asynchronous counterparts of safe.Do and
// safe.DoWith: the operation runs in its own goroutine behind a boundary,
// and Await delivers whatever the boundary decided. Interception rules
// are unchanged by the goroutine hop: matched faults arrive as failures,
// unmatched faults arrive on the error side, fault panics outside the
// catch set resume panicking in the awaiting goroutine, and cancellation
// is never packaged as a failure.
//
// The producer side of a hand-fulfilled Future looks as follows:
//
//	promise, fut := future.Create[int]()
//	go func() {
//	   promise.Fulfill(someResult())
//	}()
//	return fut
//
// A Future may be awaited repeatedly; resolution is memoized. An Await
// cut short by its own context can simply be retried.
package future

import (
	"context"

	"github.com/cyeganeh01248/safe-result/pkg/safe"
)

// Future represents the pending outcome of an asynchronous operation.
// Exactly one of the three slots is set once done is closed.
type Future[T any] struct {
	done     chan struct{}
	res      safe.Result[T]
	err      error
	panicked any
}

// Promise represents the handle used to fulfill a Future.
type Promise[T any] struct {
	f *Future[T]
}

// Create initializes a new Promise and Future pair. The Promise must be
// fulfilled exactly once; the Future can be awaited any number of times.
func Create[T any]() (Promise[T], *Future[T]) {
	f := &Future[T]{done: make(chan struct{})}
	return Promise[T]{f: f}, f
}

// Fulfill resolves the paired Future with the given result, waking all
// awaiting goroutines.
func (p Promise[T]) Fulfill(r safe.Result[T]) {
	p.f.res = r
	close(p.f.done)
}

// Resolved creates a Future that already holds the given result. Useful
// when a value is at hand but an asynchronous signature is required.
func Resolved[T any](r safe.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: r}
	close(f.done)
	return f
}

// Go runs op in its own goroutine behind the intercept-all boundary and
// returns a Future for the outcome. Cancellation is the one fault the
// asynchronous catch-all refuses: it resolves the Future on the error
// side instead of as a failure.
func Go[T any](ctx context.Context, op safe.Op[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if p := recover(); p != nil {
				f.panicked = p
			}
		}()

		res := safe.Do(ctx, op)
		if res.IsErr() && safe.IsCancellation(res.Err()) {
			f.err = res.Err()
			return
		}
		f.res = res
	}()
	return f
}

// GoWith runs op in its own goroutine behind an enumerated boundary.
// Matched faults resolve the Future as failures; unmatched returned
// faults and cancellation resolve it on the error side; unmatched fault
// panics are re-delivered by Await.
func GoWith[T any](ctx context.Context, op safe.Op[T], catch ...safe.Catcher) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if p := recover(); p != nil {
				f.panicked = p
			}
		}()

		res, err := safe.DoWith(ctx, op, catch...)
		if err != nil {
			f.err = err
			return
		}
		f.res = res
	}()
	return f
}

// Await blocks until the Future resolves or ctx is done. A context
// error return means this Await gave up, not that the operation failed;
// the Future stays valid and Await can be called again. If the
// operation escaped its boundary with a fault panic outside the catch
// set, Await panics with the original panic value.
func (f *Future[T]) Await(ctx context.Context) (safe.Result[T], error) {
	var zero safe.Result[T]

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-f.done:
	}

	if f.panicked != nil {
		panic(f.panicked)
	}
	if f.err != nil {
		return zero, f.err
	}
	return f.res, nil
}

// Then creates a new Future by applying transform to the result of the
// original Future once it resolves. Error-side outcomes and escaped
// panics are forwarded untouched; transform only ever sees a Result.
func Then[A, B any](ctx context.Context, f *Future[A], transform func(safe.Result[A]) safe.Result[B]) *Future[B] {
	next := &Future[B]{done: make(chan struct{})}
	go func() {
		defer close(next.done)
		defer func() {
			if p := recover(); p != nil {
				next.panicked = p
			}
		}()

		res, err := f.Await(ctx)
		if err != nil {
			next.err = err
			return
		}
		next.res = transform(res)
	}()
	return next
}
