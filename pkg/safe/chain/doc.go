// Package chain provides a fluent wrapper around safe.Result[T]
// for building synchronous pipelines without branching at each step.
//
// A failed chain short-circuits: later steps never run and the first
// failure is carried through unchanged, capture and all.
//
// Key operations:
// - Start/FromValue: begin a chain from a safe.Result[T] or value
// - Then: switch to a new Result[U] via a result-returning function
// - ThenTry: call a function (U, error) behind an intercept-all boundary
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - OrElse/Or/And: recover from or combine with other chains
// - Finally: collapse the chain into a final value via handlers
package chain
